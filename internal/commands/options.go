package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/analytics"
	"github.com/balkashynov/learnlog/internal/db"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the media, titles, teachers and tags you can filter by",
	Long: `Show every value observed per filter dimension. Days without sessions
contribute "null", which selects exactly those days.`,
	Args: cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		sessions, err := db.GetSessions(cmd.Context())
		if err != nil {
			return err
		}

		opts := analytics.ListOptions(analytics.Normalize(sessions, conf.MinDate(), now()))

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, opts)
		}

		fmt.Fprintf(out, "Media:    %s\n", strings.Join(opts.Media, ", "))
		fmt.Fprintf(out, "Titles:   %s\n", strings.Join(opts.Titles, ", "))
		fmt.Fprintf(out, "Teachers: %s\n", strings.Join(opts.Teachers, ", "))
		fmt.Fprintf(out, "Tags:     %s\n", strings.Join(opts.Tags, ", "))
		return nil
	}),
}

func init() {
	optionsCmd.Flags().Bool("json", false, "Print options as JSON")
}
