package main

import (
	"log"
	"strings"

	"github.com/JanviMahajan/watts-wise-flow/internal/analytics"
	"github.com/JanviMahajan/watts-wise-flow/internal/auth"
	"github.com/JanviMahajan/watts-wise-flow/internal/config"
	"github.com/JanviMahajan/watts-wise-flow/internal/database"
	"github.com/JanviMahajan/watts-wise-flow/internal/energy"
	"github.com/JanviMahajan/watts-wise-flow/internal/logger"
	"github.com/JanviMahajan/watts-wise-flow/internal/stats"
	"github.com/JanviMahajan/watts-wise-flow/internal/tips"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.Init(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zlog.Error("unexpected error", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "GreenOps backend is running"})
	})

	// Public auth
	app.Post("/auth/register", auth.RegisterHandler(cfg))
	app.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := app.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Put("/user-settings", auth.UpdateSettingsHandler())

	// Ingestion
	protected.Post("/upload-csv/", energy.UploadHandler())
	protected.Post("/manual-entry", energy.ManualEntryHandler())

	// Reads
	protected.Get("/energy-data", energy.EnergyDataHandler())
	protected.Get("/branches", energy.ListBranchesHandler())

	// Derived views
	protected.Get("/predictions", analytics.PredictionsHandler())
	protected.Get("/alerts", analytics.AlertsHandler())
	protected.Get("/usage-summary", stats.UsageSummaryHandler())
	protected.Get("/optimization-tips", tips.OptimizationTipsHandler())

	zlog.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
