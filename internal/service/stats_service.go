package service

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/internal/stats"
	"github.com/limbo/balance/internal/streak"
	"github.com/limbo/balance/pkg/clock"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// Entries shown in the "recent moods" list
const (
	recentMoodsLimit = 7
	// Mood card window, counted back from now
	moodWeekDays = 7
)

type StatsService struct {
	records   RecordsRepos
	habits    repository.HabitsRepositoryI
	clock     clock.Clock
	loc       *time.Location
	weekStart time.Weekday
	logger    *slog.Logger
}

func NewStatsService(repos RecordsRepos, habitsRepo repository.HabitsRepositoryI, clk clock.Clock, loc *time.Location, weekStart time.Weekday, logger *slog.Logger) *StatsService {
	if repos.Events == nil || repos.Activities == nil || repos.Moods == nil || habitsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsService{
		records:   repos,
		habits:    habitsRepo,
		clock:     clk,
		loc:       loc,
		weekStart: weekStart,
		logger:    logger,
	}
}

func (ss *StatsService) Overview(ctx context.Context) (*Overview, error) {
	now := ss.clock.Now().In(ss.loc)
	weekStart, weekEnd := stats.WeekRange(now, ss.weekStart)
	monthStart, monthEnd := stats.MonthRange(now)
	// One snapshot covers both periods
	from, to := minTime(weekStart, monthStart), maxTime(weekEnd, monthEnd)

	events, err := ss.records.Events.ListBetween(ctx, from, to)
	if err != nil {
		return nil, repoError("events", err)
	}
	activities, err := ss.records.Activities.ListBetween(ctx, from, to)
	if err != nil {
		return nil, repoError("activities", err)
	}
	moods, err := ss.records.Moods.ListAll(ctx)
	if err != nil {
		return nil, repoError("moods", err)
	}
	snap := stats.Snapshot{Events: events, Activities: activities, Moods: moods}

	overview := &Overview{Now: now}
	if overview.Week, err = stats.Summarize(snap, weekStart, weekEnd); err != nil {
		return nil, err
	}
	if overview.Month, err = stats.Summarize(snap, monthStart, monthEnd); err != nil {
		return nil, err
	}

	dist, warnings := stats.MoodDistribution(moods)
	percentages := stats.Percentages(dist)
	overview.Distribution = namedDistribution(dist)
	overview.Percentages = make(map[string]float64, len(percentages))
	for _, level := range entity.MoodLevels {
		overview.Percentages[level.String()] = percentages[level]
	}
	weekDist, _ := stats.MoodDistribution(moodsBetween(moods, now.AddDate(0, 0, -moodWeekDays), now))
	overview.WeekDistribution = namedDistribution(weekDist)
	overview.AverageMood = stats.AverageMood(moods).Label()

	dates := streak.Days(entity.Records(pointersTo(moods)))
	overview.CurrentStreak = streak.Current(dates, now)
	overview.LongestStreak = streak.Longest(dates, ss.loc)

	if overview.Totals, err = ss.totals(ctx); err != nil {
		return nil, err
	}

	today := dateutil.DayOf(now, ss.loc)
	recent := stats.RecentMoods(moods, -1)
	for i := range recent {
		if dateutil.DayOf(recent[i].LoggedAt, ss.loc) == today && !recent[i].LoggedAt.After(now) {
			entry := recent[i]
			overview.TodayMood = &entry
			break
		}
	}
	overview.RecentMoods = stats.RecentMoods(moods, recentMoodsLimit)

	habits, err := ss.habits.ListByDate(ctx, today)
	if err != nil {
		return nil, repoError("habits", err)
	}
	overview.Habits = stats.HabitCompletion(habits, today)

	warnings = append(warnings, overview.Week.Warnings...)
	overview.Warnings = dedupWarnings(warnings)
	for _, w := range overview.Warnings {
		ss.logger.Warn("malformed record skipped",
			slog.String("record_id", w.RecordID),
			slog.String("kind", string(w.Kind)),
			slog.String("reason", w.Reason),
		)
	}
	return overview, nil
}

func (ss *StatsService) totals(ctx context.Context) (Totals, error) {
	var (
		totals Totals
		err    error
	)
	if totals.Events, err = ss.records.Events.Count(ctx); err != nil {
		return Totals{}, repoError("events", err)
	}
	if totals.Wellness, err = ss.records.Activities.Count(ctx); err != nil {
		return Totals{}, repoError("activities", err)
	}
	if totals.Moods, err = ss.records.Moods.Count(ctx); err != nil {
		return Totals{}, repoError("moods", err)
	}
	return totals, nil
}

// namedDistribution keys counts by mood name, every level present
func namedDistribution(dist stats.Distribution) map[string]int {
	result := make(map[string]int, len(entity.MoodLevels))
	for _, level := range entity.MoodLevels {
		result[level.String()] = dist[level]
	}
	return result
}

// moodsBetween keeps entries logged in [from, to]
func moodsBetween(moods []entity.MoodEntry, from, to time.Time) []entity.MoodEntry {
	result := make([]entity.MoodEntry, 0, len(moods))
	for _, m := range moods {
		if !m.LoggedAt.Before(from) && !m.LoggedAt.After(to) {
			result = append(result, m)
		}
	}
	return result
}

func dedupWarnings(warnings []entity.MalformedRecordWarning) []entity.MalformedRecordWarning {
	seen := make(map[entity.MalformedRecordWarning]struct{}, len(warnings))
	result := make([]entity.MalformedRecordWarning, 0, len(warnings))
	for _, w := range warnings {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}
	return result
}

func pointersTo[T any](items []T) []*T {
	result := make([]*T, 0, len(items))
	for i := range items {
		result = append(result, &items[i])
	}
	return result
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
