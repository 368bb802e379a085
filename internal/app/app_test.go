package app_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/limbo/balance/internal/app"
	"github.com/limbo/balance/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, app.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, app.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, app.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, app.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, app.ParseLevel("verbose"))
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("BALANCE_ENV_FILE", "./does-not-exist.env")
	t.Setenv("POSTGRES_DB_ADDRESS", "db:5432")
	t.Setenv("POSTGRES_USER", "balance")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "balance")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("WEEK_START", "monday")
	t.Setenv("API_ADDRESS", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	s := app.LoadSettings(config.New())
	assert.Equal(t, "postgresql://balance:secret@db:5432/balance", s.DB.ConnString())
	assert.Equal(t, "Europe/Berlin", s.Location.String())
	assert.Equal(t, time.Monday, s.WeekStart)
	assert.Equal(t, ":8080", s.APIAddress)
	assert.Equal(t, 3*time.Second, s.ShutdownTimeout)
}
