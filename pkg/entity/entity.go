package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/balance/pkg/dateutil"
)

// Minutes an event or activity spans when the user didn't give a duration
const DefaultDurationMinutes = 30

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryWellness Category = "wellness"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryWellness:
		return true
	}
	return false
}

type RecordKind string

const (
	KindEvent    RecordKind = "event"
	KindWellness RecordKind = "wellness"
	KindMood     RecordKind = "mood"
	KindNote     RecordKind = "note"
	// Habits are not timed records, the kind only labels import warnings
	KindHabit RecordKind = "habit"
)

// TimedRecord is the shape every time-anchored record is reduced to before
// it reaches the calendar and stats code.
type TimedRecord struct {
	ID   uuid.UUID  `json:"id"`
	Kind RecordKind `json:"kind"`
	// Scheduled start, logging moment or associated day
	Timestamp time.Time `json:"timestamp"`
	// False for date-only records (all-day events, notes)
	HasTime         bool      `json:"has_time"`
	Category        Category  `json:"category,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Title           string    `json:"title"`
	Mood            MoodLevel `json:"mood,omitempty"`
}

type Event struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"desc"`
	Category        Category  `json:"category"`
	StartsAt        time.Time `json:"starts_at"`
	AllDay          bool      `json:"all_day"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (e *Event) Record() TimedRecord {
	return TimedRecord{
		ID:              e.ID,
		Kind:            KindEvent,
		Timestamp:       e.StartsAt,
		HasTime:         !e.AllDay,
		Category:        e.Category,
		DurationMinutes: e.DurationMinutes,
		Title:           e.Title,
	}
}

type WellnessActivity struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        Category  `json:"category"`
	StartsAt        time.Time `json:"starts_at"`
	AllDay          bool      `json:"all_day"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (a *WellnessActivity) Record() TimedRecord {
	return TimedRecord{
		ID:              a.ID,
		Kind:            KindWellness,
		Timestamp:       a.StartsAt,
		HasTime:         !a.AllDay,
		Category:        a.Category,
		DurationMinutes: a.DurationMinutes,
		Title:           a.Name,
	}
}

type MoodEntry struct {
	ID       uuid.UUID `json:"id"`
	Level    MoodLevel `json:"mood"`
	Note     string    `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

func (m *MoodEntry) Record() TimedRecord {
	return TimedRecord{
		ID:        m.ID,
		Kind:      KindMood,
		Timestamp: m.LoggedAt,
		HasTime:   true,
		Title:     m.Level.Label(),
		Mood:      m.Level,
	}
}

type Note struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	// Local midnight of the day the note is attached to
	Day       time.Time `json:"day"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Note) Record() TimedRecord {
	return TimedRecord{
		ID:        n.ID,
		Kind:      KindNote,
		Timestamp: n.Day,
		Title:     n.Title,
	}
}

type HabitPeriod string

const (
	PeriodMorning HabitPeriod = "morning"
	PeriodEvening HabitPeriod = "evening"
)

func (p HabitPeriod) Valid() bool {
	return p == PeriodMorning || p == PeriodEvening
}

type Habit struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Period    HabitPeriod  `json:"period"`
	Completed bool         `json:"completed"`
	Date      dateutil.Day `json:"date"`
	CreatedAt time.Time    `json:"created_at"`
}

type HabitStats struct {
	Name             string        `json:"name"`
	TotalCompletions int           `json:"total_completions"`
	CurrentStreak    int           `json:"current_streak"`
	LongestStreak    int           `json:"longest_streak"`
	LastCompleted    *dateutil.Day `json:"last_completed,omitempty"`
}

// MalformedRecordWarning describes a record that was left out of a result
// because its timestamp could not be resolved to a calendar date.
type MalformedRecordWarning struct {
	RecordID string     `json:"record_id"`
	Kind     RecordKind `json:"kind"`
	Reason   string     `json:"reason"`
}

func (w MalformedRecordWarning) String() string {
	return string(w.Kind) + " " + w.RecordID + ": " + w.Reason
}

func Records[T interface{ Record() TimedRecord }](items []T) []TimedRecord {
	result := make([]TimedRecord, 0, len(items))
	for _, item := range items {
		result = append(result, item.Record())
	}
	return result
}
