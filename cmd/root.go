package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"train-xchange/config"
	"train-xchange/database"
	"train-xchange/fixtures"
	"train-xchange/logger"
	"train-xchange/services"
)

var rootCmd = &cobra.Command{
	Use:   "train-xchange",
	Short: "Train ticket resale catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, searchCmd)
}

// setupLogger builds the process logger from cfg and installs it as default
func setupLogger(cfg *config.Config) (*slog.Logger, func() error) {
	log, closeLog, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Color:  cfg.LogColor,
		Fluent: logger.FluentOptions{
			Enabled: cfg.FluentEnabled,
			Host:    cfg.FluentHost,
			Port:    cfg.FluentPort,
			Tag:     cfg.FluentTag,
			Level:   cfg.FluentLevel,
		},
	})
	slog.SetDefault(log)
	if err != nil {
		log.Warn("Fluent logging disabled", "error", err)
	}
	return log, closeLog
}

// logConfigWarnings reports what config.Load had to correct
func logConfigWarnings(log *slog.Logger, cfg *config.Config) {
	for _, w := range cfg.Warnings {
		log.Warn("Configuration problem", "warning", w)
	}
}

// openStore returns the listing store selected by cfg. The cleanup func
// closes any database connection.
func openStore(ctx context.Context, cfg *config.Config) (services.ListingStore, func() error, error) {
	if cfg.ListingSource != config.SourcePostgres {
		return fixtures.NewDefaultStore(), func() error { return nil }, nil
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db, fixtures.Listings()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database.NewListingRepository(db), db.Close, nil
}
