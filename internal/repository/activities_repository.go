package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(conn PgConnection) *ActivitiesRepository {
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.WellnessActivity) (uuid.UUID, error) {
	if activity == nil {
		return uuid.UUID{}, errors.New("activity is nil")
	}
	var id uuid.UUID
	row := ar.conn.QueryRow(ctx, `INSERT INTO wellness_activities (name, category, starts_at, all_day, duration_minutes) 
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		activity.Name,
		string(activity.Category),
		activity.StartsAt,
		activity.AllDay,
		activity.DurationMinutes,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating activity db error: " + err.Error())
	}
	return id, nil
}

func (ar *ActivitiesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WellnessActivity, error) {
	row := ar.conn.QueryRow(ctx, `SELECT id, name, category, starts_at, all_day, duration_minutes, created_at, updated_at 
		FROM wellness_activities WHERE id = $1;`, id)
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, errors.New("getting activity by id error: " + err.Error())
	}
	return activity, nil
}

func (ar *ActivitiesRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.WellnessActivity, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, name, category, starts_at, all_day, duration_minutes, created_at, updated_at 
		FROM wellness_activities WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at;`, from, to)
	if err != nil {
		return nil, errors.New("listing activities error: " + err.Error())
	}
	defer rows.Close()
	activities := make([]*entity.WellnessActivity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, errors.New("unmarshalling activity error: " + err.Error())
		}
		activities = append(activities, activity)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning activities: " + err.Error())
	}
	return activities, nil
}

func (ar *ActivitiesRepository) Update(ctx context.Context, activity *entity.WellnessActivity) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE wellness_activities SET name = $1, category = $2, starts_at = $3, all_day = $4, 
		duration_minutes = $5, updated_at = NOW() WHERE id = $6;`,
		activity.Name,
		string(activity.Category),
		activity.StartsAt,
		activity.AllDay,
		activity.DurationMinutes,
		activity.ID,
	)
	if err != nil {
		return errors.New("error updating activity: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}

func (ar *ActivitiesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM wellness_activities WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting activity: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}

func (ar *ActivitiesRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM wellness_activities;`).Scan(&count); err != nil {
		return 0, errors.New("error counting activities: " + err.Error())
	}
	return count, nil
}

func scanActivity(row rowScanner) (*entity.WellnessActivity, error) {
	var (
		a        entity.WellnessActivity
		category string
	)
	err := row.Scan(&a.ID, &a.Name, &category, &a.StartsAt, &a.AllDay, &a.DurationMinutes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Category = entity.Category(category)
	return &a, nil
}
