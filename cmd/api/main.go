// @title Balance API
// @description Calendar, mood and habit tracking API for "Balance"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/balance/internal/api"
	"github.com/limbo/balance/internal/app"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/cleanup"
	"github.com/limbo/balance/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	settings := app.LoadSettings(config.New())
	logger := app.SetupLogger(settings.LogLevel)
	defer cleanup.CleanUp()

	if settings.MigrationsDir != "" {
		err := repository.Migrate(&settings.DB, settings.MigrationsDir)
		if err != nil {
			logger.Error("migration error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	pool := repository.Connect(&settings.DB)
	services := app.NewServices(pool, settings, logger)
	serv := api.New(&api.ServicesList{
		RecordsService:  services.Records,
		HabitsService:   services.Habits,
		CalendarService: services.Calendar,
		StatsService:    services.Stats,
		ImportService:   services.Import,
		Clock:           services.Clock,
		Location:        settings.Location,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := serv.Run(ctx, settings.APIAddress, settings.ShutdownTimeout)
	if err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}
