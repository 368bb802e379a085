// Package dateutil decides what "the same calendar day" means. Every
// comparison goes through Day values computed in one explicit location.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

// Day is a civil date without time-of-day or location.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

func NewDay(year int, month time.Month, day int) Day {
	// Normalizes overflow like 2024-02-30
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Day{Year: y, Month: m, Day: d}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, errors.New("parsing day error: " + err.Error())
	}
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Start returns local midnight of the day. Across a DST switch the day may
// be 23 or 25 hours long, so callers step with AddDays, not with durations.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) AddDays(n int) Day {
	return NewDay(d.Year, d.Month, d.Day+n)
}

func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }
func (d Day) After(other Day) bool  { return d.Compare(other) > 0 }

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MinuteOfDay is the wall-clock offset from local midnight in minutes
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// ParseClock parses "HH:MM" (also "H:MM" and "HH:MM:SS") into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("parsing clock error: %q is not HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("parsing clock error: bad hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("parsing clock error: bad minute in %q", s)
	}
	return hour*60 + minute, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseTimestamp resolves a stored date (RFC 3339 or YYYY-MM-DD) and an optional
// "HH:MM" time-of-day into an instant in loc. Only the local date of an RFC 3339
// value is kept. hasTime reports whether a time-of-day was given; a date-only
// value resolves to local midnight.
func ParseTimestamp(date, clock string, loc *time.Location) (t time.Time, hasTime bool, err error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false, errors.New("parsing timestamp error: empty date")
	}
	var day Day
	if ts, perr := time.Parse(time.RFC3339Nano, date); perr == nil {
		day = DayOf(ts, loc)
	} else {
		day, err = ParseDay(date)
		if err != nil {
			return time.Time{}, false, errors.New("parsing timestamp error: " + err.Error())
		}
	}
	if strings.TrimSpace(clock) == "" {
		return day.Start(loc), false, nil
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Date(day.Year, day.Month, day.Day, minutes/60, minutes%60, 0, 0, loc), true, nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
