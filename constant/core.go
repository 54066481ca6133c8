package constant

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the display refresh interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval caps the frame rate at 240 FPS
	MinFrameInterval = 4 * time.Millisecond

	// MaxFrameInterval floors the frame rate at 1 FPS
	MaxFrameInterval = time.Second

	// DefaultFPS is the configured frame rate of the interactive loop
	DefaultFPS = 60

	// LoopTaskQueueSize is the capacity of the posted task queue (resize delivery)
	LoopTaskQueueSize = 64
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "glowfield.log"

	// MaxLogSize triggers rotation of the existing log file at startup (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)

// Environment variable prefix for config overrides
const EnvPrefix = "GLOWFIELD_"
