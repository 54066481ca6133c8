// Package cli wires the glowfield commands
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/glowfield/config"
)

// Version is set at build time via -ldflags
var Version = "dev"

// ErrNotTerminal is returned by run when stdout is not a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal, use 'glowfield record' for headless output")

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	debug      bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "glowfield",
		Short: "Drifting particle field for the terminal",
		Long: `glowfield renders a field of slowly drifting, glowing particles that
link to their neighbours with faint lines. It runs full-screen in a terminal
or records frames headlessly to PNG or GIF.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("glowfield %s\n", Version))

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "write debug log to the log directory")

	root.AddCommand(
		newRunCmd(g),
		newRecordCmd(g),
		newCountCmd(g),
		newConfigCmd(g),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig resolves file, environment and flag layers then validates
// Flags win over environment, environment over the file
func loadConfig(cmd *cobra.Command, g *globalFlags, apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = g.debug
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
