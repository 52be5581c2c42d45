package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/learnlog/internal/config"
	"github.com/balkashynov/learnlog/internal/db"
	"github.com/balkashynov/learnlog/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	conf    *config.Config
	appLog  = logger.Nop()

	// now is the clock every command reads "today" from
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "learnlog",
	Short: "A learning session log with streaks and heatmaps",
	Long: `learnlog records the time you spend learning and turns it into a
gap-free calendar: totals, current and longest streaks, a heatmap and a
session listing, filterable by date range, medium, title, teacher and tags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

// setup loads config and the logger before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	l, err := logger.New(c.Logger)
	if err != nil {
		return err
	}

	conf, appLog = c, l
	appLog.Debugf(logger.TypeCommand, "running %s", cmd.CommandPath())
	return nil
}

func teardown() {
	if err := db.Close(); err != nil {
		appLog.Warnf(logger.TypeDB, "failed to close database: %v", err)
	}
	appLog.Close()
	appLog = logger.Nop()
}

// initDB opens the configured database
func initDB() error {
	if err := db.Initialize(conf.Database); err != nil {
		return fmt.Errorf("failed to open %s database: %w", conf.Database.Driver, err)
	}
	appLog.Debugf(logger.TypeDB, "opened %s database", conf.Database.Driver)
	return nil
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := initDB(); err != nil {
			return err
		}
		return fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.learnlog/config.yaml)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(versionCmd)
}
