package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/logger"
	"github.com/balkashynov/learnlog/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reports as a JSON API",
	Long: `Serve the reports over HTTP for chart front-ends.

Endpoints (all GET): /api/report, /api/calendar, /api/sessions, /api/options,
/api/streaks, /api/heatmap, /api/summary and /health. Filter with
start_date/end_date (YYYY-MM-DD) and medium, title, teacher, tag.`,
	Args: cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		if host == "" {
			host = conf.Server.Host
		}
		if port == 0 {
			port = conf.Server.Port
		}

		srv := server.New(server.SourceFunc(db.GetSessions), conf.MinDate(), appLog)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Listen(fmt.Sprintf("%s:%d", host, port))
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		appLog.Infof(logger.TypeHTTP, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}),
}

func init() {
	serveCmd.Flags().String("host", "", "Listen address (default from config)")
	serveCmd.Flags().IntP("port", "p", 0, "Listen port (default from config)")
}
