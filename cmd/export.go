package cmd

import (
	"context"
	"log"
	"os"

	"hideout-tracker/core/config"
	"hideout-tracker/core/database"
	"hideout-tracker/core/logger"

	"hideout-tracker/feature/legacy"
	"hideout-tracker/feature/progress"
	"hideout-tracker/feature/store"

	"github.com/spf13/cobra"
)

// exportCmd writes the current user state as TOML to stdout or a file.
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the user state as a TOML profile",
	Long:  `Exports hideout levels, inventory, focus, traders, quests and watchlists as editable TOML.`,
	Args:  cobra.MaximumNArgs(1),
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

		exporter := legacy.NewExporter(progress.NewService(st, logg))
		data, err := exporter.Export(context.Background())
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return os.WriteFile(args[0], data, 0o644)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
