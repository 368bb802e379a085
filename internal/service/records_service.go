package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/pkg/clock"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type RecordsRepos struct {
	Events     repository.EventsRepositoryI
	Activities repository.ActivitiesRepositoryI
	Moods      repository.MoodsRepositoryI
	Notes      repository.NotesRepositoryI
}

type RecordsService struct {
	events     repository.EventsRepositoryI
	activities repository.ActivitiesRepositoryI
	moods      repository.MoodsRepositoryI
	notes      repository.NotesRepositoryI
	clock      clock.Clock
	loc        *time.Location
}

func NewRecordsService(repos RecordsRepos, clk clock.Clock, loc *time.Location) *RecordsService {
	if repos.Events == nil || repos.Activities == nil || repos.Moods == nil || repos.Notes == nil {
		log.Fatal("on records service provided nil repos")
	}
	if loc == nil {
		loc = time.Local
	}
	return &RecordsService{
		events:     repos.Events,
		activities: repos.Activities,
		moods:      repos.Moods,
		notes:      repos.Notes,
		clock:      clk,
		loc:        loc,
	}
}

// repoError passes known sentinels through and wraps everything else
func repoError(repo string, err error, sentinels ...error) error {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err
		}
	}
	return errors.New(repo + " repository error: " + err.Error())
}

func durationOrDefault(minutes *int) int {
	if minutes == nil {
		return entity.DefaultDurationMinutes
	}
	return *minutes
}

// startOf resolves a date and an optional time-of-day in the service location.
// Without time the result is local midnight and allDay is true.
func (rs *RecordsService) startOf(date, clockTime string) (time.Time, bool, error) {
	t, hasTime, err := dateutil.ParseTimestamp(date, clockTime, rs.loc)
	if err != nil {
		return time.Time{}, false, errors.Join(errorvalues.ErrValidation, err)
	}
	return t, !hasTime, nil
}

func (rs *RecordsService) eventFromRequest(req *EventRequest) (*entity.Event, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	startsAt, allDay, err := rs.startOf(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = entity.CategoryPersonal
	}
	return &entity.Event{
		Title:           req.Title,
		Description:     req.Description,
		Category:        category,
		StartsAt:        startsAt,
		AllDay:          allDay,
		DurationMinutes: durationOrDefault(req.DurationMinutes),
	}, nil
}

func (rs *RecordsService) AddEvent(ctx context.Context, req *EventRequest) (*entity.Event, error) {
	event, err := rs.eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	id, err := rs.events.Create(ctx, event)
	if err != nil {
		return nil, repoError("events", err)
	}
	return rs.GetEvent(ctx, id)
}

func (rs *RecordsService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := rs.events.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("events", err, errorvalues.ErrEventNotFound)
	}
	return event, nil
}

func (rs *RecordsService) UpdateEvent(ctx context.Context, id uuid.UUID, req *EventRequest) (*entity.Event, error) {
	event, err := rs.eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.ID = id
	if err = rs.events.Update(ctx, event); err != nil {
		return nil, repoError("events", err, errorvalues.ErrEventNotFound)
	}
	return rs.GetEvent(ctx, id)
}

func (rs *RecordsService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := rs.events.Delete(ctx, id); err != nil {
		return repoError("events", err, errorvalues.ErrEventNotFound)
	}
	return nil
}

func (rs *RecordsService) activityFromRequest(req *ActivityRequest) (*entity.WellnessActivity, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	startsAt, allDay, err := rs.startOf(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = entity.CategoryWellness
	}
	return &entity.WellnessActivity{
		Name:            req.Name,
		Category:        category,
		StartsAt:        startsAt,
		AllDay:          allDay,
		DurationMinutes: durationOrDefault(req.DurationMinutes),
	}, nil
}

func (rs *RecordsService) AddActivity(ctx context.Context, req *ActivityRequest) (*entity.WellnessActivity, error) {
	activity, err := rs.activityFromRequest(req)
	if err != nil {
		return nil, err
	}
	id, err := rs.activities.Create(ctx, activity)
	if err != nil {
		return nil, repoError("activities", err)
	}
	return rs.GetActivity(ctx, id)
}

func (rs *RecordsService) GetActivity(ctx context.Context, id uuid.UUID) (*entity.WellnessActivity, error) {
	activity, err := rs.activities.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("activities", err, errorvalues.ErrActivityNotFound)
	}
	return activity, nil
}

func (rs *RecordsService) UpdateActivity(ctx context.Context, id uuid.UUID, req *ActivityRequest) (*entity.WellnessActivity, error) {
	activity, err := rs.activityFromRequest(req)
	if err != nil {
		return nil, err
	}
	activity.ID = id
	if err = rs.activities.Update(ctx, activity); err != nil {
		return nil, repoError("activities", err, errorvalues.ErrActivityNotFound)
	}
	return rs.GetActivity(ctx, id)
}

func (rs *RecordsService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if err := rs.activities.Delete(ctx, id); err != nil {
		return repoError("activities", err, errorvalues.ErrActivityNotFound)
	}
	return nil
}

func (rs *RecordsService) LogMood(ctx context.Context, req *MoodRequest) (*entity.MoodEntry, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	now := rs.clock.Now()
	loggedAt := now
	if req.At != nil {
		if req.At.After(now) {
			return nil, errorvalues.ErrFutureMood
		}
		loggedAt = *req.At
	}
	entry := entity.MoodEntry{
		Level:    req.Level,
		Note:     req.Note,
		LoggedAt: loggedAt.In(rs.loc),
	}
	id, err := rs.moods.Create(ctx, &entry)
	if err != nil {
		return nil, repoError("moods", err, errorvalues.ErrValidation)
	}
	entry.ID = id
	return &entry, nil
}

func (rs *RecordsService) DeleteMood(ctx context.Context, id uuid.UUID) error {
	if err := rs.moods.Delete(ctx, id); err != nil {
		return repoError("moods", err, errorvalues.ErrMoodNotFound)
	}
	return nil
}

func (rs *RecordsService) noteFromRequest(req *NoteRequest) (*entity.Note, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	day, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	return &entity.Note{
		Title:   req.Title,
		Content: req.Content,
		Day:     day.Start(rs.loc),
	}, nil
}

func (rs *RecordsService) AddNote(ctx context.Context, req *NoteRequest) (*entity.Note, error) {
	note, err := rs.noteFromRequest(req)
	if err != nil {
		return nil, err
	}
	id, err := rs.notes.Create(ctx, note)
	if err != nil {
		return nil, repoError("notes", err)
	}
	note, err = rs.notes.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("notes", err, errorvalues.ErrNoteNotFound)
	}
	return note, nil
}

func (rs *RecordsService) UpdateNote(ctx context.Context, id uuid.UUID, req *NoteRequest) (*entity.Note, error) {
	note, err := rs.noteFromRequest(req)
	if err != nil {
		return nil, err
	}
	note.ID = id
	if err = rs.notes.Update(ctx, note); err != nil {
		return nil, repoError("notes", err, errorvalues.ErrNoteNotFound)
	}
	note, err = rs.notes.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("notes", err, errorvalues.ErrNoteNotFound)
	}
	return note, nil
}

func (rs *RecordsService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if err := rs.notes.Delete(ctx, id); err != nil {
		return repoError("notes", err, errorvalues.ErrNoteNotFound)
	}
	return nil
}

func (rs *RecordsService) NotesForDay(ctx context.Context, day dateutil.Day) ([]*entity.Note, error) {
	notes, err := rs.notes.ListBetween(ctx, day.Start(rs.loc), day.AddDays(1).Start(rs.loc))
	if err != nil {
		return nil, repoError("notes", err)
	}
	return notes, nil
}
