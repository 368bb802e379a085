// Package streak counts runs of consecutive calendar days.
package streak

import (
	"slices"
	"time"

	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// Current walks back from the local day of now and counts days present in
// dates, stopping at the first missing day. The streak is live: if today has
// no entry yet it is 0, whatever happened before.
func Current(dates []time.Time, now time.Time) int {
	loc := now.Location()
	present := distinctDays(dates, loc)
	streak := 0
	for day := dateutil.DayOf(now, loc); ; day = day.AddDays(-1) {
		if _, ok := present[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// Longest is the longest run of consecutive days ever recorded
func Longest(dates []time.Time, loc *time.Location) int {
	present := distinctDays(dates, loc)
	days := make([]dateutil.Day, 0, len(present))
	for day := range present {
		days = append(days, day)
	}
	slices.SortFunc(days, dateutil.Day.Compare)
	longest, run := 0, 0
	for i, day := range days {
		if i > 0 && days[i-1].AddDays(1) == day {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// Days extracts the timestamps of records, for streaks over any record kind
func Days(records []entity.TimedRecord) []time.Time {
	result := make([]time.Time, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.Timestamp)
	}
	return result
}

func distinctDays(dates []time.Time, loc *time.Location) map[dateutil.Day]struct{} {
	present := make(map[dateutil.Day]struct{}, len(dates))
	for _, t := range dates {
		if t.IsZero() {
			continue
		}
		present[dateutil.DayOf(t, loc)] = struct{}{}
	}
	return present
}
