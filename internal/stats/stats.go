// Package stats computes period rollups and mood summaries for the stats screen.
package stats

import (
	"math"
	"slices"
	"time"

	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/timeline"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// CountInRange counts records with start <= timestamp < end
func CountInRange(records []entity.TimedRecord, start, end time.Time) (int, []entity.MalformedRecordWarning, error) {
	if start.After(end) {
		return 0, nil, &errorvalues.InvalidRangeError{Start: start, End: end}
	}
	count := 0
	warnings := make([]entity.MalformedRecordWarning, 0)
	for _, rec := range records {
		if w, bad := timeline.Validate(rec); bad {
			warnings = append(warnings, w)
			continue
		}
		if !rec.Timestamp.Before(start) && rec.Timestamp.Before(end) {
			count++
		}
	}
	return count, warnings, nil
}

// WeekRange returns local midnight of the latest weekStart day not after now,
// and the midnight seven days later.
func WeekRange(now time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	loc := now.Location()
	first := WeekStartDay(dateutil.DayOf(now, loc), weekStart)
	return first.Start(loc), first.AddDays(7).Start(loc)
}

func WeekStartDay(day dateutil.Day, weekStart time.Weekday) dateutil.Day {
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDays(-back)
}

// MonthRange returns the first of now's month and the first of the next month
func MonthRange(now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, loc), time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
}

// Distribution always carries all five mood levels
type Distribution map[entity.MoodLevel]int

func (d Distribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

func MoodDistribution(entries []entity.MoodEntry) (Distribution, []entity.MalformedRecordWarning) {
	dist := make(Distribution, len(entity.MoodLevels))
	for _, level := range entity.MoodLevels {
		dist[level] = 0
	}
	warnings := make([]entity.MalformedRecordWarning, 0)
	for _, entry := range entries {
		if w, bad := timeline.Validate(entry.Record()); bad {
			warnings = append(warnings, w)
			continue
		}
		if !entry.Level.Valid() {
			warnings = append(warnings, entity.MalformedRecordWarning{
				RecordID: entry.ID.String(),
				Kind:     entity.KindMood,
				Reason:   "unknown mood level " + entry.Level.String(),
			})
			continue
		}
		dist[entry.Level]++
	}
	return dist, warnings
}

// Percentages maps each level to its share in [0, 100]. An empty distribution
// gives zero for every level.
func Percentages(dist Distribution) map[entity.MoodLevel]float64 {
	result := make(map[entity.MoodLevel]float64, len(entity.MoodLevels))
	total := dist.Total()
	for _, level := range entity.MoodLevels {
		if total == 0 {
			result[level] = 0
			continue
		}
		result[level] = float64(dist[level]) / float64(total) * 100
	}
	return result
}

// AverageMood rounds the mean ordinal half up and maps it back to a level.
// Without valid entries it returns entity.MoodNone.
func AverageMood(entries []entity.MoodEntry) entity.MoodLevel {
	sum, n := 0, 0
	for _, entry := range entries {
		if _, bad := timeline.Validate(entry.Record()); bad || !entry.Level.Valid() {
			continue
		}
		sum += int(entry.Level)
		n++
	}
	if n == 0 {
		return entity.MoodNone
	}
	rounded := int(math.Floor(float64(sum)/float64(n) + 0.5))
	rounded = max(int(entity.MoodTerrible), min(int(entity.MoodExcellent), rounded))
	return entity.MoodLevel(rounded)
}

// RecentMoods returns at most n entries, newest first
func RecentMoods(entries []entity.MoodEntry, n int) []entity.MoodEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b entity.MoodEntry) int {
		return b.LoggedAt.Compare(a.LoggedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = make([]entity.MoodEntry, 0)
	}
	return sorted
}
