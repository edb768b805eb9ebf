package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"labreserve-service/internal/app"
	"labreserve-service/internal/config"
	"labreserve-service/internal/provider"
	"labreserve-service/internal/schedule"
	"labreserve-service/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	clients, err := provider.NewClients(ctx, cfg.CredentialsFile)
	if err != nil {
		logger.Fatal("google clients", zap.Error(err))
	}

	cal := provider.NewGoogleCalendar(clients.Calendar, cfg.CalendarID, cfg.TimezoneName)
	sheet := provider.NewGoogleSheet(clients.Sheets, cfg.SpreadsheetID, cfg.SheetRange)

	svc := schedule.NewService(cfg.Catalog, cal, sheet, cfg.ProviderTimeout, logger)

	appInstance := &app.App{
		Schedule: svc,
		Catalog:  cfg.Catalog,
		Location: cfg.Location,
		Logger:   logger,
	}

	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.Int("slots", len(cfg.Catalog)))

	server.Run(appInstance.Router(), cfg.Port)
}
