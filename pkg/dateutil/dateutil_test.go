package dateutil_test

import (
	"testing"
	"time"

	"github.com/limbo/balance/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, dateutil.DaysIn(2024, time.February))
	assert.Equal(t, 28, dateutil.DaysIn(2023, time.February))
	assert.Equal(t, 31, dateutil.DaysIn(2024, time.December))
	assert.Equal(t, 30, dateutil.DaysIn(2024, time.April))
}

func TestDayOfUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	instant := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, dateutil.Day{Year: 2024, Month: time.March, Day: 10}, dateutil.DayOf(instant, time.UTC))
	assert.Equal(t, dateutil.Day{Year: 2024, Month: time.March, Day: 11}, dateutil.DayOf(instant, tokyo))
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	d := dateutil.NewDay(2024, time.February, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2023-12-31", dateutil.NewDay(2024, time.January, 1).AddDays(-1).String())
}

func TestStartAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2024-03-10 is 23 hours long in New York
	day := dateutil.NewDay(2024, time.March, 10)
	next := day.AddDays(1)
	assert.Equal(t, 23*time.Hour, next.Start(loc).Sub(day.Start(loc)))
	assert.Equal(t, day, dateutil.DayOf(day.Start(loc).Add(22*time.Hour), loc))
}

func TestCompare(t *testing.T) {
	a := dateutil.NewDay(2024, time.March, 10)
	b := dateutil.NewDay(2024, time.April, 1)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(dateutil.NewDay(2024, time.March, 10)))
	assert.Equal(t, time.Sunday, a.Weekday())
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		Desc     string
		Input    string
		Expected int
		IsError  bool
	}{
		{Desc: "morning", Input: "09:15", Expected: 9*60 + 15},
		{Desc: "single digit hour", Input: "7:30", Expected: 7*60 + 30},
		{Desc: "with seconds", Input: "21:30:00", Expected: 21*60 + 30},
		{Desc: "bad hour", Input: "24:00", IsError: true},
		{Desc: "bad minute", Input: "10:61", IsError: true},
		{Desc: "garbage", Input: "noon", IsError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			minutes, err := dateutil.ParseClock(tc.Input)
			if tc.IsError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, minutes)
		})
	}
	assert.Equal(t, "09:05", dateutil.FormatClock(9*60+5))
}

func TestParseTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	testCases := []struct {
		Desc        string
		Date        string
		Clock       string
		Expected    time.Time
		ExpectedHas bool
		IsError     bool
	}{
		{
			Desc:        "plain day with time",
			Date:        "2024-03-10",
			Clock:       "09:00",
			Expected:    time.Date(2024, 3, 10, 9, 0, 0, 0, loc),
			ExpectedHas: true,
		},
		{
			Desc:     "plain day without time",
			Date:     "2024-03-10",
			Expected: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			Desc:     "iso instant keeps its local date",
			Date:     "2024-03-10T02:00:00.000Z",
			Expected: time.Date(2024, 3, 9, 0, 0, 0, 0, loc),
		},
		{
			Desc:        "iso instant with time",
			Date:        "2024-03-10T15:00:00Z",
			Clock:       "18:30",
			Expected:    time.Date(2024, 3, 10, 18, 30, 0, 0, loc),
			ExpectedHas: true,
		},
		{Desc: "empty", Date: "", IsError: true},
		{Desc: "garbage date", Date: "10/03/2024", IsError: true},
		{Desc: "garbage time", Date: "2024-03-10", Clock: "late", IsError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ts, hasTime, err := dateutil.ParseTimestamp(tc.Date, tc.Clock, loc)
			if tc.IsError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.Expected.Equal(ts), "got %v", ts)
			assert.Equal(t, tc.ExpectedHas, hasTime)
		})
	}
}
