package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/glowfield/constant"
)

// setupLogging installs the default slog logger
// The screen owns stdout and stderr, so output goes to a file under dir when debug is set and is discarded otherwise
// An existing file over the size limit is rotated to a timestamped name first
// Fails when debug was requested but the log file cannot be opened
func setupLogging(debug bool, dir, level string) (*os.File, *slog.Logger, error) {
	if !debug {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return nil, logger, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelDebug
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, constant.LogFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > constant.MaxLogSize {
		ext := filepath.Ext(constant.LogFileName)
		base := constant.LogFileName[:len(constant.LogFileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
		rotateErr = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	if rotateErr != nil {
		// appending to the oversized file still keeps the session log
		logger.Warn("log rotation failed", "path", logPath, "error", rotateErr)
	}
	return f, logger, nil
}
