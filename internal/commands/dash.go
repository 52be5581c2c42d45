package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard: totals, streaks, heatmap and sessions.

Keys:
  r  cycle date range
  m  cycle medium
  t  cycle tag
  q  quit`,
	Args: cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		sessions, err := db.GetSessions(cmd.Context())
		if err != nil {
			return err
		}
		return tui.RunDashboard(sessions, conf.MinDate(), now())
	}),
}
