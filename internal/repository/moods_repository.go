package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/pkg/entity"
)

type MoodsRepository struct {
	conn PgConnection
}

func NewMoodsRepo(conn PgConnection) *MoodsRepository {
	return &MoodsRepository{
		conn: conn,
	}
}

func (mr *MoodsRepository) Create(ctx context.Context, mood *entity.MoodEntry) (uuid.UUID, error) {
	if mood == nil {
		return uuid.UUID{}, errors.New("mood entry is nil")
	}
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO mood_entries (level, note, logged_at) VALUES ($1, $2, $3) RETURNING id;`,
		int(mood.Level),
		mood.Note,
		mood.LoggedAt,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation, level out of 1..5
			case "23514":
				return uuid.UUID{}, errorvalues.ErrValidation
			}
		}
		return uuid.UUID{}, errors.New("creating mood entry db error: " + err.Error())
	}
	return id, nil
}

func (mr *MoodsRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.MoodEntry, error) {
	return mr.list(ctx, `SELECT id, level, note, logged_at FROM mood_entries 
		WHERE logged_at >= $1 AND logged_at < $2 ORDER BY logged_at;`, from, to)
}

func (mr *MoodsRepository) ListAll(ctx context.Context) ([]entity.MoodEntry, error) {
	return mr.list(ctx, `SELECT id, level, note, logged_at FROM mood_entries ORDER BY logged_at;`)
}

func (mr *MoodsRepository) list(ctx context.Context, query string, args ...any) ([]entity.MoodEntry, error) {
	rows, err := mr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing mood entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.MoodEntry, 0)
	for rows.Next() {
		var (
			m     entity.MoodEntry
			level int
		)
		if err = rows.Scan(&m.ID, &level, &m.Note, &m.LoggedAt); err != nil {
			return nil, errors.New("unmarshalling mood entry error: " + err.Error())
		}
		m.Level = entity.MoodLevel(level)
		entries = append(entries, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning mood entries: " + err.Error())
	}
	return entries, nil
}

func (mr *MoodsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM mood_entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting mood entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMoodNotFound
	}
	return nil
}

func (mr *MoodsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := mr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM mood_entries;`).Scan(&count); err != nil {
		return 0, errors.New("error counting mood entries: " + err.Error())
	}
	return count, nil
}
