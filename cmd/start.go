package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"metabuild-hub/core/assets"
	"metabuild-hub/core/config"
	"metabuild-hub/core/database"
	"metabuild-hub/core/loader"
	"metabuild-hub/core/logger"
	"metabuild-hub/core/middleware/auth"
	"metabuild-hub/core/middleware/rayid"
	"metabuild-hub/core/reconcile"
	"metabuild-hub/core/storage"

	"metabuild-hub/feature/dashboard"
	"metabuild-hub/feature/integrity"
	"metabuild-hub/feature/minting"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "metabuild-hub/docs/swagger"
)

// @title MetaBuild Hub API
// @version 1.0
// @description Virtual fair dashboard and minting API.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the MetaBuild Hub server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database (required by the ledger backend only)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to ledger database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if err := storage.EnsureBucket(cmd.Context(), store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Bucket not ready, media uploads will fail", zap.Error(err))
		}

		// 5. Select Collection Backend
		b, err := openBackend(cfg, db, logg)
		if err != nil {
			logg.Fatal("Failed to open collection backend", zap.Error(err))
		}
		reconciler := reconcile.New(b, assets.NewResolver(cfg.Assets), cfg.Reconcile, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             minting.MaxMediaBytes + 1<<20,
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(dashboard.NewFeature(reconciler, logg))
		mgr.Register(minting.NewFeature(b.minter(), store, cfg.Storage.Bucket, cfg.Assets.MediaPrefix, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Assets.MediaPrefix, logg, db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id attached
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("backend", cfg.Server.Backend),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
