package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMood(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	moodsRepo := repository.NewMoodsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO mood_entries (level, note, logged_at) VALUES ($1, $2, $3) RETURNING id;`)
	loggedAt := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	entry := &entity.MoodEntry{Level: entity.MoodGood, Note: "calm day", LoggedAt: loggedAt}
	moodID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(4, "calm day", loggedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(moodID))
			},
		},
		{
			Desc:  "check violation",
			Error: errorvalues.ErrValidation,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(4, "calm day", loggedAt).
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating mood entry db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(4, "calm day", loggedAt).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := moodsRepo.Create(ctx, entry)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, moodID, id)
		})
	}
}

func TestListAllMoods(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	moodsRepo := repository.NewMoodsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, level, note, logged_at FROM mood_entries ORDER BY logged_at;`)
	first := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)
	mock.ExpectQuery(query).WillReturnRows(
		pgxmock.NewRows([]string{"id", "level", "note", "logged_at"}).
			AddRow(uuid.New(), 2, "", first).
			AddRow(uuid.New(), 5, "great", first.Add(24*time.Hour)),
	)
	entries, err := moodsRepo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.MoodPoor, entries[0].Level)
	assert.Equal(t, entity.MoodExcellent, entries[1].Level)
	assert.Equal(t, "great", entries[1].Note)
}

func TestListMoodsBetween(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	moodsRepo := repository.NewMoodsRepo(mock)
	query := regexp.QuoteMeta(`WHERE logged_at >= $1 AND logged_at < $2 ORDER BY logged_at;`)
	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery(query).WithArgs(from, to).WillReturnRows(pgxmock.NewRows([]string{"id", "level", "note", "logged_at"}))
	entries, err := moodsRepo.ListBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, entries)

	mock.ExpectQuery(query).WithArgs(from, to).WillReturnError(errors.New("db error"))
	_, err = moodsRepo.ListBetween(context.Background(), from, to)
	assert.EqualError(t, err, "listing mood entries error: db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMood(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	moodsRepo := repository.NewMoodsRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM mood_entries WHERE id = $1;`)
	id := uuid.New()

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, moodsRepo.Delete(context.Background(), id), errorvalues.ErrMoodNotFound)

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, moodsRepo.Delete(context.Background(), id))
}

func TestGetNoteByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	notesRepo := repository.NewNotesRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, title, content, day, created_at, updated_at FROM notes WHERE id = $1;`)
	columns := []string{"id", "title", "content", "day", "created_at", "updated_at"}
	id := uuid.New()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(query).WithArgs(id).WillReturnRows(
		pgxmock.NewRows(columns).AddRow(id, "journal", "slept well", day, day, day),
	)
	note, err := notesRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "slept well", note.Content)
	assert.Equal(t, day, note.Day)

	mock.ExpectQuery(query).WithArgs(id).WillReturnRows(pgxmock.NewRows(columns))
	_, err = notesRepo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errorvalues.ErrNoteNotFound)
}
