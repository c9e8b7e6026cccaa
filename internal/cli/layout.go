package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	width   float64
	height  float64
	markers int
	asJSON  bool
}

// layoutCommand creates the layout command for printing a marker layout.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{
		width:  footprint.Default.Width,
		height: footprint.Default.Height,
	}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the star layout for a footprint",
		Long: `Print the star layout for a footprint.

Each row is one marker: its slot angle, the jittered angle, the distance from
the control center and the resulting offset. The layout only depends on the
footprint and the marker count, so the same flags always print the same table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("markers") {
				opts.markers = c.Config.MarkerCount
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "footprint width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "footprint height")
	cmd.Flags().IntVarP(&opts.markers, "markers", "n", 0, "marker count (default from config)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

// runLayout computes the layout and prints it.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts layoutOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateDimension("width", opts.width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", opts.height); err != nil {
		return err
	}
	if err := errors.ValidateMarkerCount(opts.markers); err != nil {
		return err
	}

	prog := newProgress(logger)
	fp := footprint.Footprint{Width: opts.width, Height: opts.height}
	prog.footprint(fp, opts.markers)
	markers := layout.Compute(fp, opts.markers, c.Config.LayoutOptions())
	prog.done("Computed layout", "markers", len(markers))

	if opts.asJSON {
		data, err := json.MarshalIndent(markers, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w, markerTable(markers))
	b := layout.Bounds(fp, markers)
	printKeyValue(w, "footprint", fmt.Sprintf("%g × %g", fp.Width, fp.Height))
	printKeyValue(w, "bounds", fmt.Sprintf("%.1f × %.1f", b.Width(), b.Height()))
	return nil
}

// markerTable renders markers as a rounded lipgloss table.
func markerTable(markers []layout.MarkerSpec) string {
	rows := make([][]string, 0, len(markers))
	for _, m := range markers {
		rows = append(rows, []string{
			strconv.Itoa(m.Index),
			formatFloat(m.BaseAngle),
			formatFloat(m.AngleDeg),
			formatFloat(m.Distance),
			formatFloat(m.OffsetX),
			formatFloat(m.OffsetY),
		})
	}

	numberStyle := lipgloss.NewStyle().Foreground(colorWhite).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Slot", "Angle", "Distance", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleNumber
			default:
				return numberStyle
			}
		})

	return t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
