package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/parser"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show total time and streaks",
	Long: `Show total learning time, the current and the longest streak for the
selected range and filters. A day without sessions yet does not break the
current streak when it is today.`,
	Args: cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		report, err := loadReport(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			report.Streaks.Days = nil
			return writeJSON(out, report)
		}

		fmt.Fprintf(out, "📅 %s - %s\n", parser.FormatDate(report.StartDate), parser.FormatDate(report.EndDate))
		fmt.Fprintf(out, "⏱️  Total time:     %s\n", report.TotalFormatted)
		fmt.Fprintf(out, "🔥 Current streak: %d days\n", report.Streaks.Current)
		fmt.Fprintf(out, "🏆 Max streak:     %d days\n", report.Streaks.Max)
		fmt.Fprintf(out, "📚 Sessions:       %d\n", len(report.Sessions))
		return nil
	}),
}

func init() {
	addFilterFlags(statsCmd)
	statsCmd.Flags().Bool("json", false, "Print the full report as JSON")
}
