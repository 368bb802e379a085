// Package timeline buckets time-anchored records into calendar days and
// day-view time slots. Nothing here keeps state: an Index only pins the
// location every date comparison is made in.
package timeline

import (
	"cmp"
	"slices"
	"time"

	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

const (
	SlotMinutes = 30
	// First and last slot start of the day view, minutes from midnight
	FirstSlotStart = 7 * 60
	LastSlotStart  = 21*60 + 30
)

type Index struct {
	loc *time.Location
}

func New(loc *time.Location) *Index {
	if loc == nil {
		loc = time.Local
	}
	return &Index{loc: loc}
}

func (ix *Index) Location() *time.Location {
	return ix.loc
}

// RecordsOnDay returns the records whose local date is day. Timed records come
// first in time-of-day order, then date-only records in input order.
func (ix *Index) RecordsOnDay(records []entity.TimedRecord, day dateutil.Day) ([]entity.TimedRecord, []entity.MalformedRecordWarning) {
	valid, warnings := ix.split(records)
	result := make([]entity.TimedRecord, 0)
	for _, rec := range valid {
		if dateutil.DayOf(rec.Timestamp, ix.loc) == day {
			result = append(result, rec)
		}
	}
	ix.sortByTimeOfDay(result)
	return result, warnings
}

// RecordsInTimeSlot keeps the records whose interval [start, start+duration)
// intersects [slotStart, slotStart+slotMinutes). A zero-length record counts
// for the slot its start falls into. Date-only records occupy no slot.
func (ix *Index) RecordsInTimeSlot(dayRecords []entity.TimedRecord, slotStart time.Time, slotMinutes int) []entity.TimedRecord {
	result := make([]entity.TimedRecord, 0)
	if slotMinutes <= 0 {
		return result
	}
	slotEnd := slotStart.Add(time.Duration(slotMinutes) * time.Minute)
	for _, rec := range dayRecords {
		if !rec.HasTime || rec.Timestamp.IsZero() {
			continue
		}
		if overlaps(rec, slotStart, slotEnd) {
			result = append(result, rec)
		}
	}
	return result
}

func overlaps(rec entity.TimedRecord, slotStart, slotEnd time.Time) bool {
	start := rec.Timestamp
	if rec.DurationMinutes <= 0 {
		return !start.Before(slotStart) && start.Before(slotEnd)
	}
	end := start.Add(time.Duration(rec.DurationMinutes) * time.Minute)
	return start.Before(slotEnd) && slotStart.Before(end)
}

// RecordsInMonth buckets records by day of month. Every day of the month is a
// key, days without records map to an empty slice.
func (ix *Index) RecordsInMonth(records []entity.TimedRecord, year int, month time.Month) (map[int][]entity.TimedRecord, []entity.MalformedRecordWarning) {
	valid, warnings := ix.split(records)
	days := dateutil.DaysIn(year, month)
	result := make(map[int][]entity.TimedRecord, days)
	for d := 1; d <= days; d++ {
		result[d] = make([]entity.TimedRecord, 0)
	}
	for _, rec := range valid {
		day := dateutil.DayOf(rec.Timestamp, ix.loc)
		if day.Year == year && day.Month == month {
			result[day.Day] = append(result[day.Day], rec)
		}
	}
	for _, bucket := range result {
		ix.sortByTimeOfDay(bucket)
	}
	return result, warnings
}

// RecordsInWeek buckets records into the seven days starting at start
func (ix *Index) RecordsInWeek(records []entity.TimedRecord, start dateutil.Day) (map[dateutil.Day][]entity.TimedRecord, []entity.MalformedRecordWarning) {
	valid, warnings := ix.split(records)
	result := make(map[dateutil.Day][]entity.TimedRecord, 7)
	for i := range 7 {
		result[start.AddDays(i)] = make([]entity.TimedRecord, 0)
	}
	for _, rec := range valid {
		day := dateutil.DayOf(rec.Timestamp, ix.loc)
		if bucket, ok := result[day]; ok {
			result[day] = append(bucket, rec)
		}
	}
	for _, bucket := range result {
		ix.sortByTimeOfDay(bucket)
	}
	return result, warnings
}

// CountsInYear counts records per month of year; all twelve months are present.
func (ix *Index) CountsInYear(records []entity.TimedRecord, year int) (map[time.Month]int, []entity.MalformedRecordWarning) {
	valid, warnings := ix.split(records)
	result := make(map[time.Month]int, 12)
	for m := time.January; m <= time.December; m++ {
		result[m] = 0
	}
	for _, rec := range valid {
		day := dateutil.DayOf(rec.Timestamp, ix.loc)
		if day.Year == year {
			result[day.Month]++
		}
	}
	return result, warnings
}

// MarkedDays reports which days of the month carry at least one record
func (ix *Index) MarkedDays(records []entity.TimedRecord, year int, month time.Month) []int {
	valid, _ := ix.split(records)
	seen := make(map[int]struct{})
	for _, rec := range valid {
		day := dateutil.DayOf(rec.Timestamp, ix.loc)
		if day.Year == year && day.Month == month {
			seen[day.Day] = struct{}{}
		}
	}
	marked := make([]int, 0, len(seen))
	for d := range seen {
		marked = append(marked, d)
	}
	slices.Sort(marked)
	return marked
}

func (ix *Index) split(records []entity.TimedRecord) ([]entity.TimedRecord, []entity.MalformedRecordWarning) {
	valid := make([]entity.TimedRecord, 0, len(records))
	warnings := make([]entity.MalformedRecordWarning, 0)
	for _, rec := range records {
		if w, bad := Validate(rec); bad {
			warnings = append(warnings, w)
			continue
		}
		valid = append(valid, rec)
	}
	return valid, warnings
}

// Validate reports a record whose timestamp can't be placed on a calendar day
func Validate(rec entity.TimedRecord) (entity.MalformedRecordWarning, bool) {
	switch {
	case rec.Timestamp.IsZero():
		return entity.MalformedRecordWarning{
			RecordID: rec.ID.String(),
			Kind:     rec.Kind,
			Reason:   "timestamp is missing",
		}, true
	case rec.DurationMinutes < 0:
		return entity.MalformedRecordWarning{
			RecordID: rec.ID.String(),
			Kind:     rec.Kind,
			Reason:   "negative duration",
		}, true
	}
	return entity.MalformedRecordWarning{}, false
}

func (ix *Index) sortByTimeOfDay(records []entity.TimedRecord) {
	slices.SortStableFunc(records, func(a, b entity.TimedRecord) int {
		switch {
		case a.HasTime && !b.HasTime:
			return -1
		case !a.HasTime && b.HasTime:
			return 1
		case !a.HasTime && !b.HasTime:
			return 0
		}
		return cmp.Compare(ix.sinceMidnight(a.Timestamp), ix.sinceMidnight(b.Timestamp))
	})
}

// sinceMidnight keeps seconds and below, so entries logged within one minute
// still sort by time
func (ix *Index) sinceMidnight(t time.Time) time.Duration {
	return t.Sub(dateutil.DayOf(t, ix.loc).Start(ix.loc))
}
