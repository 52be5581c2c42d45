package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/backup"
	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write every session to a backup file",
	Long: `Write every session to a JSON backup. File names ending in .zst are
zstd-compressed.

Examples:
  learnlog export sessions.json
  learnlog export ~/backups/learnlog.json.zst`,
	Args: cobra.ExactArgs(1),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		sessions, err := db.GetSessions(cmd.Context())
		if err != nil {
			return err
		}

		if err := backup.Write(args[0], sessions, now()); err != nil {
			return err
		}

		appLog.Infof(logger.TypeCommand, "exported %d sessions to %s", len(sessions), args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "💾 Exported %d sessions to %s\n", len(sessions), args[0])
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Add the sessions of a backup file",
	Long: `Add every session of a backup written by export. Sessions get new IDs;
nothing is imported if any session is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		f, err := backup.Read(args[0])
		if err != nil {
			return err
		}

		n, err := db.ImportSessions(cmd.Context(), f.Sessions)
		if err != nil {
			return err
		}

		appLog.Infof(logger.TypeCommand, "imported %d sessions from %s", n, args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "📥 Imported %d sessions from %s\n", n, args[0])
		return nil
	}),
}
