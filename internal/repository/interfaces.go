package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type EventsRepositoryI interface {
	// Creates new event. Returns generated ID
	Create(ctx context.Context, event *entity.Event) (uuid.UUID, error)
	// Searches event with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// Lists events starting in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error)
	// Replaces event fields keeping its ID
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type ActivitiesRepositoryI interface {
	Create(ctx context.Context, activity *entity.WellnessActivity) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WellnessActivity, error)
	// Lists activities starting in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.WellnessActivity, error)
	Update(ctx context.Context, activity *entity.WellnessActivity) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type MoodsRepositoryI interface {
	Create(ctx context.Context, mood *entity.MoodEntry) (uuid.UUID, error)
	// Lists entries logged in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.MoodEntry, error)
	// Lists every entry, oldest first. Used for distribution and streaks
	ListAll(ctx context.Context) ([]entity.MoodEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type NotesRepositoryI interface {
	Create(ctx context.Context, note *entity.Note) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	// Lists notes attached to days in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates habit for a day. Name, period and date must be unique together
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits of the day
	ListByDate(ctx context.Context, day dateutil.Day) ([]entity.Habit, error)
	// Flips completion flag, returns the new state
	ToggleCompleted(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns days on which habit with given name was completed, oldest first
	ListCompletedDays(ctx context.Context, name string) ([]dateutil.Day, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
