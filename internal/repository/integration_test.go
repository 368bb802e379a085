package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("balance"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	cfg := &testPGConfig{connStr: connStr}
	require.NoError(t, repository.Migrate(cfg, "../../migrations"))

	pool, err := pgxpool.New(ctx, cfg.ConnString())
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositoriesIntegration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	loc := time.FixedZone("UTC+3", 3*3600)

	t.Run("events", func(t *testing.T) {
		repo := repository.NewEventsRepo(pool)
		start := time.Date(2024, 3, 10, 9, 0, 0, 0, loc)
		id, err := repo.Create(ctx, &entity.Event{
			Title: "standup", Category: entity.CategoryWork, StartsAt: start, DurationMinutes: 15,
		})
		require.NoError(t, err)

		events, err := repo.ListBetween(ctx, start.Add(-time.Hour), start.Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.True(t, start.Equal(events[0].StartsAt))

		events[0].DurationMinutes = 45
		require.NoError(t, repo.Update(ctx, events[0]))
		event, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 45, event.DurationMinutes)

		require.NoError(t, repo.Delete(ctx, id))
		_, err = repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrEventNotFound)
	})

	t.Run("moods", func(t *testing.T) {
		repo := repository.NewMoodsRepo(pool)
		_, err := repo.Create(ctx, &entity.MoodEntry{Level: entity.MoodGood, LoggedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, loc)})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &entity.MoodEntry{Level: 9, LoggedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, loc)})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("habits", func(t *testing.T) {
		repo := repository.NewHabitsRepo(pool)
		day := dateutil.NewDay(2024, time.March, 10)
		habit := &entity.Habit{Name: "stretch", Period: entity.PeriodMorning, Date: day}
		id, err := repo.Create(ctx, habit)
		require.NoError(t, err)
		_, err = repo.Create(ctx, habit)
		assert.ErrorIs(t, err, errorvalues.ErrHabitExists)

		completed, err := repo.ToggleCompleted(ctx, id)
		require.NoError(t, err)
		assert.True(t, completed)

		habits, err := repo.ListByDate(ctx, day)
		require.NoError(t, err)
		require.Len(t, habits, 1)
		assert.Equal(t, day, habits[0].Date)

		days, err := repo.ListCompletedDays(ctx, "stretch")
		require.NoError(t, err)
		assert.Equal(t, []dateutil.Day{day}, days)
	})
}
