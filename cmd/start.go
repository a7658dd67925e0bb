package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"catalog-browser/core/database"
	"catalog-browser/core/loader"
	"catalog-browser/core/logger"
	"catalog-browser/core/middleware/auth"
	"catalog-browser/core/middleware/rayid"
	"catalog-browser/feature/catalog"
	"catalog-browser/feature/preferences"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "catalog-browser/docs/swagger"
)

// @title Catalog Browser API
// @version 1.0
// @description Filter, sort, page through and export the item catalog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Loads the catalog, then starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := setup()
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Preferences are optional; the catalog works without a database.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			if errors.Is(err, database.ErrDisabled) {
				logg.Info("Preferences database disabled")
			} else {
				logg.Warn("Optional database connection failed", zap.Error(err))
			}
		} else {
			db = conn
			logg.Info("Connected to preferences database", zap.String("driver", cfg.Database.Driver))
		}

		store, err := newStore(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create catalog source", zap.Error(err))
		}

		// Without a manifest there is nothing to serve.
		if _, err := store.Reload(cmd.Context()); err != nil {
			logg.Fatal("Initial catalog load failed", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
		})

		catalogFeature := catalog.NewFeature(store, cfg.Catalog, logg)
		prefsFeature := preferences.NewFeature(db, logg)
		if prefsFeature.IsEnabled() {
			catalogFeature.UsePreferences(prefsFeature.Service())
		}

		mgr := loader.NewManager(logg)
		mgr.Register(catalogFeature)
		mgr.Register(prefsFeature)

		// RayID first so every later log line can carry it
		app.Use(rayid.New())

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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.ListenAddr()))
			if err := app.Listen(cfg.Server.ListenAddr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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
