package cmd

import (
	"context"
	"log"

	"hideout-tracker/core/config"
	"hideout-tracker/core/database"
	"hideout-tracker/core/logger"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/store"
	syncfeat "hideout-tracker/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a single catalog sync and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a one-off catalog sync",
	Long:  `Fetches the remote catalog once, merges it into the local store and prints the report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database, logg)
		if err != nil {
			return err
		}
		st, err := store.Open(db, logg)
		if err != nil {
			return err
		}

		engine := syncfeat.NewEngine(catalog.NewClient(cfg.Catalog), st, logg)
		report := engine.SyncAll(context.Background())

		logg.Info("Sync finished",
			zap.Int("stations", report.Stations),
			zap.Int("traders", report.Traders),
			zap.Int("items", report.Items),
			zap.Int("tasks", report.Tasks),
			zap.Int("maps", report.Maps),
			zap.Strings("errors", report.Errors),
			zap.String("took", report.ExecutionTime),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
