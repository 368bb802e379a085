package stats

import (
	"time"

	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// Snapshot is a read-only copy of the record collections a summary is computed over
type Snapshot struct {
	Events     []*entity.Event
	Activities []*entity.WellnessActivity
	Moods      []entity.MoodEntry
}

type PeriodSummary struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Moods    int       `json:"moods"`
	Events   int       `json:"events"`
	Wellness int       `json:"wellness"`
	// Records left out because of a bad timestamp
	Warnings []entity.MalformedRecordWarning `json:"warnings,omitempty"`
}

func Summarize(snap Snapshot, start, end time.Time) (PeriodSummary, error) {
	summary := PeriodSummary{Start: start, End: end}
	moods, w, err := CountInRange(entity.Records(pointers(snap.Moods)), start, end)
	if err != nil {
		return PeriodSummary{}, err
	}
	summary.Moods = moods
	summary.Warnings = append(summary.Warnings, w...)

	events, w, err := CountInRange(entity.Records(snap.Events), start, end)
	if err != nil {
		return PeriodSummary{}, err
	}
	summary.Events = events
	summary.Warnings = append(summary.Warnings, w...)

	wellness, w, err := CountInRange(entity.Records(snap.Activities), start, end)
	if err != nil {
		return PeriodSummary{}, err
	}
	summary.Wellness = wellness
	summary.Warnings = append(summary.Warnings, w...)
	return summary, nil
}

type Completion struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

func (c Completion) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Done) / float64(c.Total) * 100
}

// HabitCompletion tallies completed habits of day per period. Both periods are
// always present.
func HabitCompletion(habits []entity.Habit, day dateutil.Day) map[entity.HabitPeriod]Completion {
	result := map[entity.HabitPeriod]Completion{
		entity.PeriodMorning: {},
		entity.PeriodEvening: {},
	}
	for _, h := range habits {
		if h.Date != day {
			continue
		}
		c := result[h.Period]
		c.Total++
		if h.Completed {
			c.Done++
		}
		result[h.Period] = c
	}
	return result
}

func pointers[T any](items []T) []*T {
	result := make([]*T, 0, len(items))
	for i := range items {
		result = append(result, &items[i])
	}
	return result
}
