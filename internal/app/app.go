// Package app assembles configuration, repositories and services shared by
// the HTTP server and the command line tool.
package app

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/clock"
	"github.com/limbo/balance/pkg/config"
)

type Settings struct {
	DB              repository.PGCfg
	Location        *time.Location
	WeekStart       time.Weekday
	APIAddress      string
	LogLevel        slog.Level
	MigrationsDir   string
	ShutdownTimeout time.Duration
}

func LoadSettings(cfg *config.Config) *Settings {
	return &Settings{
		DB: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		},
		Location:        cfg.GetLocation("TIMEZONE"),
		WeekStart:       cfg.GetWeekday("WEEK_START", time.Sunday),
		APIAddress:      cfg.GetStringOr("API_ADDRESS", ":8080"),
		LogLevel:        ParseLevel(cfg.GetString("LOG_LEVEL")),
		MigrationsDir:   cfg.GetString("MIGRATIONS_DIR"),
		ShutdownTimeout: cfg.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// ParseLevel maps debug/info/warn/error onto slog levels, info otherwise
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger installs a JSON slog handler as the default logger
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

type Services struct {
	Records  *service.RecordsService
	Habits   *service.HabitsService
	Calendar *service.CalendarService
	Stats    *service.StatsService
	Import   *service.ImportService
	Clock    clock.Clock
}

// NewServices wires every repository over one connection
func NewServices(conn repository.PgConnection, s *Settings, logger *slog.Logger) *Services {
	repos := service.RecordsRepos{
		Events:     repository.NewEventsRepo(conn),
		Activities: repository.NewActivitiesRepo(conn),
		Moods:      repository.NewMoodsRepo(conn),
		Notes:      repository.NewNotesRepo(conn),
	}
	habitsRepo := repository.NewHabitsRepo(conn)
	clk := clock.System{Loc: s.Location}
	return &Services{
		Records:  service.NewRecordsService(repos, clk, s.Location),
		Habits:   service.NewHabitsService(habitsRepo, clk, s.Location),
		Calendar: service.NewCalendarService(repos, habitsRepo, s.Location, s.WeekStart, logger),
		Stats:    service.NewStatsService(repos, habitsRepo, clk, s.Location, s.WeekStart, logger),
		Import:   service.NewImportService(repos, habitsRepo, s.Location),
		Clock:    clk,
	}
}
