package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/logger"
	"github.com/balkashynov/learnlog/internal/parser"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a learning session",
	Long: `Log a finished learning session.

Either give both ends of the session or its length:
  learnlog log --medium video --title "Go Course" --start "yesterday 20:00" --end "yesterday 21:15"
  learnlog log --medium book --title "SQL Antipatterns" --minutes 45 --tags sql,databases

--start/--end accept "<date> HH:MM" or "HH:MM" for today. With --minutes the
session ends at --end, or now when --end is omitted.`,
	Args: cobra.NoArgs,
	RunE: withDB(runLog),
}

func runLog(cmd *cobra.Command, args []string) error {
	start, end, err := sessionTimes(cmd)
	if err != nil {
		return err
	}

	medium, _ := cmd.Flags().GetString("medium")
	title, _ := cmd.Flags().GetString("title")
	teacher, _ := cmd.Flags().GetString("teacher")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	notes, _ := cmd.Flags().GetString("notes")
	url, _ := cmd.Flags().GetString("url")

	session, err := db.CreateSession(cmd.Context(), db.CreateSessionRequest{
		Start:     start,
		End:       end,
		Medium:    medium,
		Title:     title,
		Teacher:   teacher,
		Tags:      tags,
		Notes:     notes,
		Hyperlink: url,
	})
	if err != nil {
		return err
	}

	appLog.Infof(logger.TypeCommand, "logged session #%d", session.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %.0f min of \"%s\" on %s - ID: %d\n",
		session.DurationMin(), session.Title, parser.FormatDate(session.SessionStartTime), session.ID)
	return nil
}

// sessionTimes resolves --start/--end/--minutes into a time range
func sessionTimes(cmd *cobra.Command) (time.Time, time.Time, error) {
	current := now()
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	minutesStr, _ := cmd.Flags().GetString("minutes")

	end := current
	if endStr != "" {
		t, err := parser.ParseDateTime(endStr, current)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--end: %w", err)
		}
		end = t
	}

	if minutesStr != "" {
		if startStr != "" {
			return time.Time{}, time.Time{}, fmt.Errorf("use either --start or --minutes, not both")
		}
		d, err := parser.ParseMinutes(minutesStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--minutes: %w", err)
		}
		return end.Add(-d), end, nil
	}

	if startStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("either --start or --minutes is required")
	}
	start, err := parser.ParseDateTime(startStr, current)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--start: %w", err)
	}
	return start, end, nil
}

func init() {
	logCmd.Flags().StringP("medium", "m", "", "Medium, e.g. video, book, course (required)")
	logCmd.Flags().StringP("title", "t", "", "What you studied (required)")
	logCmd.Flags().String("teacher", "", "Author or instructor")
	logCmd.Flags().StringSlice("tags", nil, "Tags (comma-separated or repeated)")
	logCmd.Flags().StringP("notes", "n", "", "Free-form notes")
	logCmd.Flags().String("url", "", "Link to the material")
	logCmd.Flags().String("start", "", "Start time (\"<date> HH:MM\" or \"HH:MM\")")
	logCmd.Flags().String("end", "", "End time (default now)")
	logCmd.Flags().String("minutes", "", "Session length (45, 90m, 1h30m) instead of --start")
}
