package cmd

import (
	"context"
	"log"
	"os"

	"hideout-tracker/core/config"
	"hideout-tracker/core/database"
	"hideout-tracker/core/logger"

	"hideout-tracker/feature/legacy"
	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/store"

	"github.com/spf13/cobra"
)

// importCmd applies a TOML profile over the current user state.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a TOML profile",
	Long:  `Parses a TOML profile and applies it over the current state. A malformed profile changes nothing.`,
	Args:  cobra.ExactArgs(1),
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

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg.Database, logg)
		if err != nil {
			return err
		}
		st, err := store.Open(db, logg)
		if err != nil {
			return err
		}

		importer := legacy.NewImporter(mutation.NewService(st, logg), logg)
		return importer.Import(context.Background(), data)
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
}
