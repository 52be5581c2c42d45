package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/analytics"
	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/parser"
)

// addFilterFlags registers the selection flags shared by reporting commands
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Start date (dd/mm/yyyy, yyyy-mm-dd, today, yesterday, X days ago)")
	cmd.Flags().String("to", "", "End date (default today)")
	cmd.Flags().StringSlice("medium", nil, "Only these media (comma-separated or repeated)")
	cmd.Flags().StringSlice("title", nil, "Only these titles")
	cmd.Flags().StringSlice("teacher", nil, "Only these teachers")
	cmd.Flags().StringSlice("tags", nil, "Sessions carrying any of these tags")
}

// queryFromFlags turns the filter flags into a query
func queryFromFlags(cmd *cobra.Command) (analytics.Query, error) {
	var q analytics.Query
	today := now()

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		d, err := parser.ParseDate(from, today)
		if err != nil {
			return q, fmt.Errorf("--from: %w", err)
		}
		q.From = &d
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		d, err := parser.ParseDate(to, today)
		if err != nil {
			return q, fmt.Errorf("--to: %w", err)
		}
		q.To = &d
	}

	media, _ := cmd.Flags().GetStringSlice("medium")
	titles, _ := cmd.Flags().GetStringSlice("title")
	teachers, _ := cmd.Flags().GetStringSlice("teacher")
	tags, _ := cmd.Flags().GetStringSlice("tags")

	q.Media = parser.SplitList(media...)
	q.Titles = parser.SplitList(titles...)
	q.Teachers = parser.SplitList(teachers...)
	if parsed := parser.ParseTags(tags...); len(parsed) > 0 {
		q.Tags = parsed
	}
	return q, nil
}

// loadReport reads every session and runs the pipeline for the flags
func loadReport(cmd *cobra.Command) (analytics.Report, error) {
	q, err := queryFromFlags(cmd)
	if err != nil {
		return analytics.Report{}, err
	}

	sessions, err := db.GetSessions(cmd.Context())
	if err != nil {
		return analytics.Report{}, err
	}

	return analytics.BuildReport(sessions, conf.MinDate(), now(), q), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
