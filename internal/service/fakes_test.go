package service_test

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// In-memory repositories. Setting err makes every call fail with it.

type eventsRepoMock struct {
	items map[uuid.UUID]*entity.Event
	err   error
}

func (m *eventsRepoMock) Create(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.UUID{}, m.err
	}
	e := *event
	e.ID = uuid.New()
	e.CreatedAt, e.UpdatedAt = time.Now(), time.Now()
	m.items[e.ID] = &e
	return e.ID, nil
}

func (m *eventsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.items[id]
	if !ok {
		return nil, errorvalues.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *eventsRepoMock) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*entity.Event, 0)
	for _, e := range m.items {
		if !e.StartsAt.Before(from) && e.StartsAt.Before(to) {
			cp := *e
			result = append(result, &cp)
		}
	}
	slices.SortFunc(result, func(a, b *entity.Event) int { return a.StartsAt.Compare(b.StartsAt) })
	return result, nil
}

func (m *eventsRepoMock) Update(ctx context.Context, event *entity.Event) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[event.ID]; !ok {
		return errorvalues.ErrEventNotFound
	}
	e := *event
	m.items[e.ID] = &e
	return nil
}

func (m *eventsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return errorvalues.ErrEventNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *eventsRepoMock) Count(ctx context.Context) (int, error) {
	return len(m.items), m.err
}

type activitiesRepoMock struct {
	items map[uuid.UUID]*entity.WellnessActivity
	err   error
}

func (m *activitiesRepoMock) Create(ctx context.Context, activity *entity.WellnessActivity) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.UUID{}, m.err
	}
	a := *activity
	a.ID = uuid.New()
	m.items[a.ID] = &a
	return a.ID, nil
}

func (m *activitiesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.WellnessActivity, error) {
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.items[id]
	if !ok {
		return nil, errorvalues.ErrActivityNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *activitiesRepoMock) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.WellnessActivity, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*entity.WellnessActivity, 0)
	for _, a := range m.items {
		if !a.StartsAt.Before(from) && a.StartsAt.Before(to) {
			cp := *a
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *activitiesRepoMock) Update(ctx context.Context, activity *entity.WellnessActivity) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[activity.ID]; !ok {
		return errorvalues.ErrActivityNotFound
	}
	a := *activity
	m.items[a.ID] = &a
	return nil
}

func (m *activitiesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return errorvalues.ErrActivityNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *activitiesRepoMock) Count(ctx context.Context) (int, error) {
	return len(m.items), m.err
}

type moodsRepoMock struct {
	items []entity.MoodEntry
	err   error
}

func (m *moodsRepoMock) Create(ctx context.Context, mood *entity.MoodEntry) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.UUID{}, m.err
	}
	e := *mood
	e.ID = uuid.New()
	m.items = append(m.items, e)
	return e.ID, nil
}

func (m *moodsRepoMock) ListBetween(ctx context.Context, from, to time.Time) ([]entity.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]entity.MoodEntry, 0)
	for _, e := range m.items {
		if !e.LoggedAt.Before(from) && e.LoggedAt.Before(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *moodsRepoMock) ListAll(ctx context.Context) ([]entity.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.items), nil
}

func (m *moodsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, e := range m.items {
		if e.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return errorvalues.ErrMoodNotFound
}

func (m *moodsRepoMock) Count(ctx context.Context) (int, error) {
	return len(m.items), m.err
}

type notesRepoMock struct {
	items map[uuid.UUID]*entity.Note
	err   error
}

func (m *notesRepoMock) Create(ctx context.Context, note *entity.Note) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.UUID{}, m.err
	}
	n := *note
	n.ID = uuid.New()
	m.items[n.ID] = &n
	return n.ID, nil
}

func (m *notesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	n, ok := m.items[id]
	if !ok {
		return nil, errorvalues.ErrNoteNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *notesRepoMock) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*entity.Note, 0)
	for _, n := range m.items {
		if !n.Day.Before(from) && n.Day.Before(to) {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *notesRepoMock) Update(ctx context.Context, note *entity.Note) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[note.ID]; !ok {
		return errorvalues.ErrNoteNotFound
	}
	n := *note
	m.items[n.ID] = &n
	return nil
}

func (m *notesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return errorvalues.ErrNoteNotFound
	}
	delete(m.items, id)
	return nil
}

type habitsRepoMock struct {
	items map[uuid.UUID]*entity.Habit
	err   error
}

func (m *habitsRepoMock) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.UUID{}, m.err
	}
	for _, h := range m.items {
		if h.Name == habit.Name && h.Period == habit.Period && h.Date == habit.Date {
			return uuid.UUID{}, errorvalues.ErrHabitExists
		}
	}
	h := *habit
	h.ID = uuid.New()
	m.items[h.ID] = &h
	return h.ID, nil
}

func (m *habitsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	h, ok := m.items[id]
	if !ok {
		return nil, errorvalues.ErrHabitNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *habitsRepoMock) ListByDate(ctx context.Context, day dateutil.Day) ([]entity.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]entity.Habit, 0)
	for _, h := range m.items {
		if h.Date == day {
			result = append(result, *h)
		}
	}
	slices.SortFunc(result, func(a, b entity.Habit) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return result, nil
}

func (m *habitsRepoMock) ToggleCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	h, ok := m.items[id]
	if !ok {
		return false, errorvalues.ErrHabitNotFound
	}
	h.Completed = !h.Completed
	return h.Completed, nil
}

func (m *habitsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return errorvalues.ErrHabitNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *habitsRepoMock) ListCompletedDays(ctx context.Context, name string) ([]dateutil.Day, error) {
	if m.err != nil {
		return nil, m.err
	}
	seen := make(map[dateutil.Day]struct{})
	days := make([]dateutil.Day, 0)
	for _, h := range m.items {
		if h.Name != name || !h.Completed {
			continue
		}
		if _, ok := seen[h.Date]; ok {
			continue
		}
		seen[h.Date] = struct{}{}
		days = append(days, h.Date)
	}
	slices.SortFunc(days, dateutil.Day.Compare)
	return days, nil
}

type repos struct {
	events     *eventsRepoMock
	activities *activitiesRepoMock
	moods      *moodsRepoMock
	notes      *notesRepoMock
	habits     *habitsRepoMock
}

func newRepos() *repos {
	return &repos{
		events:     &eventsRepoMock{items: make(map[uuid.UUID]*entity.Event)},
		activities: &activitiesRepoMock{items: make(map[uuid.UUID]*entity.WellnessActivity)},
		moods:      &moodsRepoMock{},
		notes:      &notesRepoMock{items: make(map[uuid.UUID]*entity.Note)},
		habits:     &habitsRepoMock{items: make(map[uuid.UUID]*entity.Habit)},
	}
}

func (r *repos) records() service.RecordsRepos {
	return service.RecordsRepos{
		Events:     r.events,
		Activities: r.activities,
		Moods:      r.moods,
		Notes:      r.notes,
	}
}
