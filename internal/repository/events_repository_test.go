package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{"id", "title", "description", "category", "starts_at", "all_day", "duration_minutes", "created_at", "updated_at"}

func TestCreateEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	eventsRepo := repository.NewEventsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO events (title, description, category, starts_at, all_day, duration_minutes)`)
	eventID := uuid.New()
	event := &entity.Event{
		Title:           "standup",
		Description:     "daily sync",
		Category:        entity.CategoryWork,
		StartsAt:        time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 15,
	}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(event.Title, event.Description, "work", event.StartsAt, false, 15).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(eventID))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating event db error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(event.Title, event.Description, "work", event.StartsAt, false, 15).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			id, err := eventsRepo.Create(ctx, event)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, eventID, id)
			}
		})
	}
	_, err = eventsRepo.Create(ctx, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	eventsRepo := repository.NewEventsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, title, description, category, starts_at, all_day, duration_minutes, created_at, updated_at`)
	eventID := uuid.New()
	startsAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.Event
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			Expected: &entity.Event{
				ID:              eventID,
				Title:           "dentist",
				Description:     "",
				Category:        entity.CategoryPersonal,
				StartsAt:        startsAt,
				DurationMinutes: 45,
				CreatedAt:       created,
				UpdatedAt:       created,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(eventID).WillReturnRows(
					pgxmock.NewRows(eventColumns).AddRow(eventID, "dentist", "", "personal", startsAt, false, 45, created, created),
				)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrEventNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(eventID).WillReturnRows(pgxmock.NewRows(eventColumns))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting event by id error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(eventID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			event, err := eventsRepo.GetByID(ctx, eventID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, event)
		})
	}
}

func TestListEventsBetween(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	eventsRepo := repository.NewEventsRepo(mock)
	query := regexp.QuoteMeta(`FROM events WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at;`)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(query).WithArgs(from, to).WillReturnRows(
		pgxmock.NewRows(eventColumns).
			AddRow(uuid.New(), "a", "", "work", from.Add(time.Hour), false, 30, now, now).
			AddRow(uuid.New(), "b", "", "personal", from.Add(48*time.Hour), true, 0, now, now),
	)
	events, err := eventsRepo.ListBetween(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.CategoryWork, events[0].Category)
	assert.True(t, events[1].AllDay)

	mock.ExpectQuery(query).WithArgs(from, to).WillReturnError(errors.New("db error"))
	_, err = eventsRepo.ListBetween(context.Background(), from, to)
	assert.EqualError(t, err, "listing events error: db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	eventsRepo := repository.NewEventsRepo(mock)
	query := regexp.QuoteMeta(`UPDATE events SET title = $1, description = $2, category = $3, starts_at = $4, all_day = $5,`)
	event := &entity.Event{
		ID:              uuid.New(),
		Title:           "standup",
		Category:        entity.CategoryWork,
		StartsAt:        time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(event.Title, event.Description, "work", event.StartsAt, false, 30, event.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrEventNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(event.Title, event.Description, "work", event.StartsAt, false, 30, event.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error updating event: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(event.Title, event.Description, "work", event.StartsAt, false, 30, event.ID).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := eventsRepo.Update(ctx, event)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	eventsRepo := repository.NewEventsRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM events WHERE id = $1;`)
	id := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrEventNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error deleting event: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := eventsRepo.Delete(ctx, id)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCountActivities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	activitiesRepo := repository.NewActivitiesRepo(mock)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM wellness_activities;`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
	count, err := activitiesRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCreateActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	activitiesRepo := repository.NewActivitiesRepo(mock)
	id := uuid.New()
	activity := &entity.WellnessActivity{
		Name:            "Meditation",
		Category:        entity.CategoryWellness,
		StartsAt:        time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
		DurationMinutes: 15,
	}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wellness_activities (name, category, starts_at, all_day, duration_minutes)`)).
		WithArgs("Meditation", "wellness", activity.StartsAt, false, 15).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
	got, err := activitiesRepo.Create(context.Background(), activity)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
