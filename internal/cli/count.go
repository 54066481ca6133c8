package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/glowfield/field"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	countStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8b5cf6"))
	modeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06b6d4"))
)

func newCountCmd(g *globalFlags) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "count [WxH...]",
		Short: "Print the particle count for viewport sizes",
		Long: `Print how many particles the count policy assigns to each viewport.
Sizes are given as WxH arguments or with --width and --height.`,
		Example: "  glowfield count 800x600 375x667\n  glowfield count --width 1920 --height 1080",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g, nil)
			if err != nil {
				return err
			}
			params, err := cfg.FieldParams()
			if err != nil {
				return err
			}

			sizes := make([]field.Viewport, 0, len(args)+1)
			for _, arg := range args {
				vp, err := parseSize(arg)
				if err != nil {
					return err
				}
				sizes = append(sizes, vp)
			}
			if len(sizes) == 0 {
				sizes = append(sizes, field.Viewport{Width: width, Height: height})
			}

			out := cmd.OutOrStdout()
			for _, vp := range sizes {
				fmt.Fprintln(out, formatCount(params.Policy, vp))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "viewport height in pixels")
	return cmd
}

// parseSize accepts "800x600"
func parseSize(s string) (field.Viewport, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return field.Viewport{}, fmt.Errorf("invalid size %q, want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return field.Viewport{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return field.Viewport{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return field.Viewport{Width: width, Height: height}, nil
}

func formatCount(p field.CountPolicy, vp field.Viewport) string {
	mode := "wide"
	if vp.Mobile(p.MobileBreakpoint) {
		mode = "mobile"
	}
	return fmt.Sprintf("%s %s %s %s",
		labelStyle.Render(fmt.Sprintf("%dx%d", vp.Width, vp.Height)),
		countStyle.Render(strconv.Itoa(p.Count(vp))),
		labelStyle.Render("particles"),
		modeStyle.Render(fmt.Sprintf("(%s, cap %d)", mode, p.Cap(vp))),
	)
}
