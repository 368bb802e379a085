package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

// EventRequest describes an event to create or the new version of an existing one.
// Without Time the event is all-day.
type EventRequest struct {
	Title           string          `validate:"required,max=200"`
	Description     string          `validate:"max=2000"`
	Category        entity.Category `validate:"omitempty,category"`
	Date            string          `validate:"required,datetime=2006-01-02"`
	Time            string          `validate:"omitempty,clock"`
	DurationMinutes *int            `validate:"omitempty,min=0,max=1440"`
}

type ActivityRequest struct {
	Name            string          `validate:"required,max=200"`
	Category        entity.Category `validate:"omitempty,category"`
	Date            string          `validate:"required,datetime=2006-01-02"`
	Time            string          `validate:"omitempty,clock"`
	DurationMinutes *int            `validate:"omitempty,min=0,max=1440"`
}

// MoodRequest logs a mood now, or at At when backfilling
type MoodRequest struct {
	Level entity.MoodLevel `validate:"mood_level"`
	Note  string           `validate:"max=500"`
	At    *time.Time
}

type NoteRequest struct {
	Title   string `validate:"max=200"`
	Content string `validate:"required,max=10000"`
	Date    string `validate:"required,datetime=2006-01-02"`
}

// HabitRequest adds a habit to a day, today when Date is empty
type HabitRequest struct {
	Name   string             `validate:"required,max=100"`
	Period entity.HabitPeriod `validate:"habit_period"`
	Date   string             `validate:"omitempty,datetime=2006-01-02"`
}

type RecordsServiceI interface {
	// Validates request, stores event and returns it with ID
	AddEvent(ctx context.Context, req *EventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// Replaces event with the new version keeping its ID
	UpdateEvent(ctx context.Context, id uuid.UUID, req *EventRequest) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	AddActivity(ctx context.Context, req *ActivityRequest) (*entity.WellnessActivity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*entity.WellnessActivity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req *ActivityRequest) (*entity.WellnessActivity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	// Logs mood at the current moment. Entries in the future are rejected
	LogMood(ctx context.Context, req *MoodRequest) (*entity.MoodEntry, error)
	DeleteMood(ctx context.Context, id uuid.UUID) error
	AddNote(ctx context.Context, req *NoteRequest) (*entity.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, req *NoteRequest) (*entity.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
	// Lists notes attached to the day
	NotesForDay(ctx context.Context, day dateutil.Day) ([]*entity.Note, error)
}

type HabitsServiceI interface {
	AddHabit(ctx context.Context, req *HabitRequest) (*entity.Habit, error)
	// Flips completion and returns the habit in its new state
	ToggleHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	RemoveHabit(ctx context.Context, id uuid.UUID) error
	// Habits of the day split by period. Zero day means today
	HabitsForDay(ctx context.Context, day dateutil.Day) (*DayHabits, error)
	// Streaks and totals over every completion of habits with given name
	Stats(ctx context.Context, name string) (*entity.HabitStats, error)
}

type CalendarServiceI interface {
	Day(ctx context.Context, day dateutil.Day) (*DayCalendar, error)
	// Seven days of the week containing day
	Week(ctx context.Context, day dateutil.Day) (*WeekCalendar, error)
	Month(ctx context.Context, year int, month time.Month) (*MonthCalendar, error)
	Year(ctx context.Context, year int) (*YearCalendar, error)
}

type StatsServiceI interface {
	Overview(ctx context.Context) (*Overview, error)
}

type ImportServiceI interface {
	// Reads legacy JSON export and stores what can be parsed
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
}
