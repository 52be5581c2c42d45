package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/tui"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Draw a week by weekday activity heatmap",
	Long: `Draw the learning heatmap for the selected range, one column per week
and one row per weekday. Long ranges show the most recent year.`,
	Args: cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		report, err := loadReport(cmd)
		if err != nil {
			return err
		}

		grid := tui.BuildHeatmapGrid(report.Heatmap, report.StartDate, report.EndDate)
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderHeatmap(grid))
		return nil
	}),
}

func init() {
	addFilterFlags(heatmapCmd)
}
