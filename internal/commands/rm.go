package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/logger"
)

var rmCmd = &cobra.Command{
	Use:   "rm [session-id]",
	Short: "Delete a logged session",
	Args:  cobra.ExactArgs(1),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid session ID '%s'", args[0])
		}

		session, err := db.DeleteSession(cmd.Context(), uint(id))
		if err != nil {
			return err
		}

		appLog.Infof(logger.TypeCommand, "deleted session #%d", session.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted session #%d: %s\n", session.ID, session.Title)
		return nil
	}),
}
