package service

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/internal/stats"
	"github.com/limbo/balance/internal/timeline"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type CalendarService struct {
	records   RecordsRepos
	habits    repository.HabitsRepositoryI
	index     *timeline.Index
	weekStart time.Weekday
	logger    *slog.Logger
}

func NewCalendarService(repos RecordsRepos, habitsRepo repository.HabitsRepositoryI, loc *time.Location, weekStart time.Weekday, logger *slog.Logger) *CalendarService {
	if repos.Events == nil || repos.Activities == nil || repos.Moods == nil || repos.Notes == nil || habitsRepo == nil {
		log.Fatal("on calendar service provided nil repos")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarService{
		records:   repos,
		habits:    habitsRepo,
		index:     timeline.New(loc),
		weekStart: weekStart,
		logger:    logger,
	}
}

// load collects every record kind anchored in [from, to)
func (cs *CalendarService) load(ctx context.Context, from, to time.Time) ([]entity.TimedRecord, error) {
	return loadRecords(ctx, cs.records, from, to)
}

func loadRecords(ctx context.Context, repos RecordsRepos, from, to time.Time) ([]entity.TimedRecord, error) {
	events, err := repos.Events.ListBetween(ctx, from, to)
	if err != nil {
		return nil, repoError("events", err)
	}
	activities, err := repos.Activities.ListBetween(ctx, from, to)
	if err != nil {
		return nil, repoError("activities", err)
	}
	moods, err := repos.Moods.ListBetween(ctx, from, to)
	if err != nil {
		return nil, repoError("moods", err)
	}
	notes, err := repos.Notes.ListBetween(ctx, from, to)
	if err != nil {
		return nil, repoError("notes", err)
	}
	records := make([]entity.TimedRecord, 0, len(events)+len(activities)+len(moods)+len(notes))
	records = append(records, entity.Records(events)...)
	records = append(records, entity.Records(activities)...)
	for i := range moods {
		records = append(records, moods[i].Record())
	}
	records = append(records, entity.Records(notes)...)
	return records, nil
}

func (cs *CalendarService) warn(warnings []entity.MalformedRecordWarning) {
	for _, w := range warnings {
		cs.logger.Warn("malformed record skipped",
			slog.String("record_id", w.RecordID),
			slog.String("kind", string(w.Kind)),
			slog.String("reason", w.Reason),
		)
	}
}

func (cs *CalendarService) Day(ctx context.Context, day dateutil.Day) (*DayCalendar, error) {
	loc := cs.index.Location()
	records, err := cs.load(ctx, day.Start(loc), day.AddDays(1).Start(loc))
	if err != nil {
		return nil, err
	}
	view := cs.index.DayView(records, day)
	cs.warn(view.Warnings)
	habits, err := cs.habits.ListByDate(ctx, day)
	if err != nil {
		return nil, repoError("habits", err)
	}
	return &DayCalendar{DayView: view, Habits: splitHabits(habits, day)}, nil
}

func (cs *CalendarService) Week(ctx context.Context, day dateutil.Day) (*WeekCalendar, error) {
	loc := cs.index.Location()
	start := stats.WeekStartDay(day, cs.weekStart)
	records, err := cs.load(ctx, start.Start(loc), start.AddDays(7).Start(loc))
	if err != nil {
		return nil, err
	}
	byDay, warnings := cs.index.RecordsInWeek(records, start)
	cs.warn(warnings)
	week := &WeekCalendar{
		Start:    start,
		Days:     make([]CalendarDay, 0, 7),
		Warnings: warnings,
	}
	for i := range 7 {
		d := start.AddDays(i)
		week.Days = append(week.Days, CalendarDay{Day: d, Records: byDay[d]})
	}
	return week, nil
}

func (cs *CalendarService) Month(ctx context.Context, year int, month time.Month) (*MonthCalendar, error) {
	loc := cs.index.Location()
	first := dateutil.NewDay(year, month, 1)
	records, err := cs.load(ctx, first.Start(loc), first.AddDays(dateutil.DaysIn(year, month)).Start(loc))
	if err != nil {
		return nil, err
	}
	byDay, warnings := cs.index.RecordsInMonth(records, year, month)
	cs.warn(warnings)
	result := &MonthCalendar{
		Year:     year,
		Month:    month,
		Days:     make([]CalendarDay, 0, len(byDay)),
		Marked:   cs.index.MarkedDays(records, year, month),
		Warnings: warnings,
	}
	for d := 1; d <= len(byDay); d++ {
		result.Days = append(result.Days, CalendarDay{Day: dateutil.NewDay(year, month, d), Records: byDay[d]})
	}
	return result, nil
}

func (cs *CalendarService) Year(ctx context.Context, year int) (*YearCalendar, error) {
	loc := cs.index.Location()
	records, err := cs.load(ctx, dateutil.NewDay(year, time.January, 1).Start(loc), dateutil.NewDay(year+1, time.January, 1).Start(loc))
	if err != nil {
		return nil, err
	}
	counts, warnings := cs.index.CountsInYear(records, year)
	cs.warn(warnings)
	result := &YearCalendar{
		Year:     year,
		Months:   make([]MonthCount, 0, 12),
		Warnings: warnings,
	}
	for m := time.January; m <= time.December; m++ {
		result.Months = append(result.Months, MonthCount{Month: m, Count: counts[m]})
	}
	return result, nil
}
