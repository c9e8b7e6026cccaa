package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/starfield/pkg/errors"
)

// demoCommand creates the interactive demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		logFile string
		markers int
		content string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drive a live control in the terminal",
		Long: `Drive a live control in the terminal.

Move the mouse over the button to reveal the stars, click it (or press enter)
to activate it, and use + and - to resize it. Activation puts the control into
the loading state for terminal.busy_for. Logs go to --log-file because the
demo owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if cmd.Flags().Changed("markers") {
				if err := errors.ValidateMarkerCount(markers); err != nil {
					return err
				}
				cfg.MarkerCount = markers
			}
			if cmd.Flags().Changed("content") {
				cfg.Content = content
			}
			c.Config = cfg
			return c.runDemo(cmd.Context(), cmd.OutOrStdout(), logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	cmd.Flags().IntVarP(&markers, "markers", "n", 0, "marker count (default from config)")
	cmd.Flags().StringVar(&content, "content", "", "button label (default from config)")

	return cmd
}

// runDemo runs the bubbletea program until the user quits or ctx ends.
func (c *CLI) runDemo(ctx context.Context, w io.Writer, logFile string) error {
	logOut, closeLog, err := openLogFile(logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, c.Logger.GetLevel())

	m := newDemoModel(c.Config, logger)
	defer func() { m.ctl.Unmount(m.now()) }()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run demo: %w", err)
	}

	printSuccess(w, "Activated %d times", m.activations)
	return nil
}
