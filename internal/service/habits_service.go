package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/internal/stats"
	"github.com/limbo/balance/internal/streak"
	"github.com/limbo/balance/pkg/clock"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type HabitsService struct {
	repo  repository.HabitsRepositoryI
	clock clock.Clock
	loc   *time.Location
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, clk clock.Clock, loc *time.Location) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	if loc == nil {
		loc = time.Local
	}
	return &HabitsService{
		repo:  habitsRepo,
		clock: clk,
		loc:   loc,
	}
}

func (hs *HabitsService) today() dateutil.Day {
	return dateutil.DayOf(hs.clock.Now(), hs.loc)
}

func (hs *HabitsService) AddHabit(ctx context.Context, req *HabitRequest) (*entity.Habit, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	day := hs.today()
	if req.Date != "" {
		var err error
		day, err = dateutil.ParseDay(req.Date)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrValidation, err)
		}
	}
	h := entity.Habit{
		Name:   strings.TrimSpace(req.Name),
		Period: req.Period,
		Date:   day,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		return nil, repoError("habits", err, errorvalues.ErrHabitExists)
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("habits", err, errorvalues.ErrHabitNotFound)
	}
	return habit, nil
}

func (hs *HabitsService) ToggleHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	if _, err := hs.repo.ToggleCompleted(ctx, id); err != nil {
		return nil, repoError("habits", err, errorvalues.ErrHabitNotFound)
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("habits", err, errorvalues.ErrHabitNotFound)
	}
	return habit, nil
}

func (hs *HabitsService) RemoveHabit(ctx context.Context, id uuid.UUID) error {
	if err := hs.repo.Delete(ctx, id); err != nil {
		return repoError("habits", err, errorvalues.ErrHabitNotFound)
	}
	return nil
}

func (hs *HabitsService) HabitsForDay(ctx context.Context, day dateutil.Day) (*DayHabits, error) {
	if day.IsZero() {
		day = hs.today()
	}
	habits, err := hs.repo.ListByDate(ctx, day)
	if err != nil {
		return nil, repoError("habits", err)
	}
	return splitHabits(habits, day), nil
}

// splitHabits groups habits of day by period
func splitHabits(habits []entity.Habit, day dateutil.Day) *DayHabits {
	result := &DayHabits{
		Date:       day,
		Morning:    make([]entity.Habit, 0),
		Evening:    make([]entity.Habit, 0),
		Completion: stats.HabitCompletion(habits, day),
	}
	for _, h := range habits {
		switch h.Period {
		case entity.PeriodMorning:
			result.Morning = append(result.Morning, h)
		case entity.PeriodEvening:
			result.Evening = append(result.Evening, h)
		}
	}
	return result
}

func (hs *HabitsService) Stats(ctx context.Context, name string) (*entity.HabitStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorvalues.ErrValidation
	}
	days, err := hs.repo.ListCompletedDays(ctx, name)
	if err != nil {
		return nil, repoError("habits", err)
	}
	// Days are civil dates, anchoring them in one location keeps them apart
	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Start(hs.loc))
	}
	result := &entity.HabitStats{
		Name:             name,
		TotalCompletions: len(days),
		CurrentStreak:    streak.Current(dates, hs.clock.Now().In(hs.loc)),
		LongestStreak:    streak.Longest(dates, hs.loc),
	}
	if len(days) > 0 {
		last := days[0]
		for _, d := range days[1:] {
			if d.After(last) {
				last = d
			}
		}
		result.LastCompleted = &last
	}
	return result, nil
}
