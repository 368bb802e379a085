package service

import (
	"time"

	"github.com/limbo/balance/internal/stats"
	"github.com/limbo/balance/internal/timeline"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type DayHabits struct {
	Date       dateutil.Day                            `json:"date"`
	Morning    []entity.Habit                          `json:"morning"`
	Evening    []entity.Habit                          `json:"evening"`
	Completion map[entity.HabitPeriod]stats.Completion `json:"completion"`
}

type DayCalendar struct {
	timeline.DayView
	Habits *DayHabits `json:"habits"`
}

type CalendarDay struct {
	Day     dateutil.Day         `json:"day"`
	Records []entity.TimedRecord `json:"records"`
}

type WeekCalendar struct {
	Start    dateutil.Day                    `json:"start"`
	Days     []CalendarDay                   `json:"days"`
	Warnings []entity.MalformedRecordWarning `json:"warnings,omitempty"`
}

type MonthCalendar struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
	// Days of month carrying at least one record
	Marked   []int                           `json:"marked"`
	Warnings []entity.MalformedRecordWarning `json:"warnings,omitempty"`
}

type MonthCount struct {
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

type YearCalendar struct {
	Year     int                             `json:"year"`
	Months   []MonthCount                    `json:"months"`
	Warnings []entity.MalformedRecordWarning `json:"warnings,omitempty"`
}

type Totals struct {
	Events   int `json:"events"`
	Wellness int `json:"wellness"`
	Moods    int `json:"moods"`
}

type Overview struct {
	Now   time.Time           `json:"now"`
	Week  stats.PeriodSummary `json:"week"`
	Month stats.PeriodSummary `json:"month"`
	// Keyed by mood name so the maps encode as plain JSON objects
	Distribution map[string]int `json:"distribution"`
	// Counts over the last seven days
	WeekDistribution map[string]int     `json:"week_distribution"`
	Percentages      map[string]float64 `json:"percentages"`
	AverageMood      string             `json:"average_mood"`
	CurrentStreak    int                `json:"current_streak"`
	LongestStreak    int                `json:"longest_streak"`
	Totals           Totals             `json:"totals"`
	// Latest entry of today, nil before the first one
	TodayMood   *entity.MoodEntry                       `json:"today_mood"`
	RecentMoods []entity.MoodEntry                      `json:"recent_moods"`
	Habits      map[entity.HabitPeriod]stats.Completion `json:"habits"`
	Warnings    []entity.MalformedRecordWarning         `json:"warnings,omitempty"`
}

type ImportReport struct {
	Events   int                             `json:"events"`
	Wellness int                             `json:"wellness"`
	Moods    int                             `json:"moods"`
	Notes    int                             `json:"notes"`
	Habits   int                             `json:"habits"`
	Skipped  []entity.MalformedRecordWarning `json:"skipped"`
}
