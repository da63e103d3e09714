package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hideout-tracker/core/config"
	"hideout-tracker/core/database"
	"hideout-tracker/core/loader"
	"hideout-tracker/core/logger"
	"hideout-tracker/core/middleware/auth"
	"hideout-tracker/core/middleware/rayid"

	"hideout-tracker/feature/catalog"
	"hideout-tracker/feature/legacy"
	"hideout-tracker/feature/mutation"
	"hideout-tracker/feature/progress"
	"hideout-tracker/feature/store"
	syncfeat "hideout-tracker/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Hideout Tracker API
// @version 1.0
// @description API for tracking hideout, inventory and quest progress.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the hideout tracker server",
	Long:  `Starts the HTTP server, the periodic catalog sync and the one-time legacy migration.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the local store
		db, err := database.Connect(cfg.Database, logg)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		st, err := store.Open(db, logg)
		if err != nil {
			logg.Fatal("Failed to open local store", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Wire Features
		provider := catalog.NewClient(cfg.Catalog)

		syncFeature := syncfeat.NewFeature(provider, st, logg)
		mutationFeature := mutation.NewFeature(st, logg)
		progressFeature := progress.NewFeature(st, logg)
		legacyFeature := legacy.NewFeature(cfg.Legacy, syncFeature.Engine(), mutationFeature.Service(), progressFeature.Service(), logg)

		mgr := loader.NewManager()
		mgr.Register(syncFeature)
		mgr.Register(mutationFeature)
		mgr.Register(progressFeature)
		mgr.Register(legacyFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Background work: periodic sync and one-time legacy migration.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go syncFeature.Engine().Run(ctx, cfg.Server.SyncInterval())
		go func() {
			if err := legacyFeature.Migrator().Run(ctx); err != nil {
				logg.Error("Legacy migration failed", zap.Error(err))
			}
		}()

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
