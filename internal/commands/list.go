package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/analytics"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged sessions",
	Long:    "List logged sessions newest first, with the same filters as stats",
	Args:    cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		report, err := loadReport(cmd)
		if err != nil {
			return err
		}

		sessions := report.Sessions
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if sessions == nil {
				sessions = analytics.Table{}
			}
			return writeJSON(out, sessions)
		}

		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions found. Use 'learnlog log' to record your first one.")
			return nil
		}

		// Print table header
		fmt.Fprintf(out, "%-5s %-10s %-5s %5s  %-10s %-30s %-15s %s\n", "ID", "DATE", "START", "MIN", "MEDIUM", "TITLE", "TEACHER", "TAGS")
		fmt.Fprintln(out, strings.Repeat("-", 100))

		for _, s := range sessions {
			fmt.Fprintf(out, "%-5d %-10s %-5s %5.0f  %-10s %-30s %-15s %s\n",
				s.SessionID,
				s.Date.Format("02/01/2006"),
				s.SessionStartTime.Format("15:04"),
				s.DurationMin,
				truncate(s.Medium, 10),
				truncate(s.Title, 30),
				truncate(s.Teacher, 15),
				strings.ReplaceAll(s.Tags, analytics.TagSeparator, ","))
		}
		return nil
	}),
}

// truncate shortens s to width, marking the cut with "..."
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().Bool("json", false, "Print sessions as JSON")
	listCmd.Flags().IntP("limit", "l", 0, "Show at most this many sessions")
}
