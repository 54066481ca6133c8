package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/glowfield/audio"
	"github.com/lixenwraith/glowfield/config"
	"github.com/lixenwraith/glowfield/core"
	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/loop"
	"github.com/lixenwraith/glowfield/status"
	"github.com/lixenwraith/glowfield/terminal"
	"github.com/lixenwraith/glowfield/vmath"
)

type runFlags struct {
	seed  uint64
	fps   int
	stats bool
	audio bool
	color string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the particle field full-screen in the terminal",
		Long: `Run the particle field full-screen. The field is regenerated on every
terminal resize. Press q, Esc or Ctrl-C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			cfg, err := loadConfig(cmd, g, f.apply(cmd))
			if err != nil {
				return err
			}
			return runField(cmd.Context(), cfg)
		},
	}

	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "particle sampler seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&f.fps, "fps", 0, "target frame rate")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "show the stats line")
	cmd.Flags().BoolVar(&f.audio, "audio", false, "play the ambient pad")
	cmd.Flags().StringVar(&f.color, "color", "", "color mode: auto, truecolor, 256")
	return cmd
}

// apply returns the flag layer, only explicitly set flags override
func (f *runFlags) apply(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("seed") {
			cfg.Field.Seed = f.seed
		}
		if flags.Changed("fps") {
			cfg.Render.FPS = f.fps
		}
		if flags.Changed("stats") {
			cfg.Terminal.Stats = f.stats
		}
		if flags.Changed("audio") {
			cfg.Audio.Enabled = f.audio
		}
		if flags.Changed("color") {
			cfg.Terminal.ColorMode = f.color
		}
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runField owns the interactive session: screen, frame loop, simulator and optional audio
func runField(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logFile, logger, err := setupLogging(cfg.Log.Debug, cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	params, err := cfg.FieldParams()
	if err != nil {
		return err
	}
	hostOpts, err := terminalOptions(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	lp := loop.New(cfg.FrameInterval())
	host := terminal.NewHost(screen, lp.Post, hostOpts...)
	core.SetCrashCleanup(host.Fini)
	defer host.Fini()

	logger.Info("session starting",
		"color_mode", host.ColorMode().String(),
		"interval", lp.Interval(),
		"viewport", fmt.Sprintf("%dx%d", host.Viewport().Width, host.Viewport().Height),
	)

	metrics := status.NewRegistry()
	recorder := status.NewFrameRecorder(metrics)
	detachMetrics := host.OnResize(recorder.OnResize)
	defer detachMetrics()

	simOpts := []field.Option{
		field.WithLogger(logger),
		field.WithFrameObserver(recorder.Observe),
	}
	if cfg.Audio.Enabled {
		amb := audio.NewAmbient(audioConfig(cfg))
		if err := amb.Start(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer amb.Stop()
			simOpts = append(simOpts, field.WithFrameObserver(amb.Observe))
		}
	}

	seed := cfg.ResolveSeed(time.Now())
	sim := field.NewSimulator(params, lp, vmath.NewFastRand(seed), simOpts...)
	logger.Debug("sampler seeded", "seed", seed)

	lp.Start()
	lp.Do(func() { sim.Start(host) })

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := host.Run(sigCtx)

	lp.Do(sim.Stop)
	lp.Stop()

	logger.Info("session ended", append([]any{"ticks", lp.Ticks()}, metrics.Attrs()...)...)
	return runErr
}
