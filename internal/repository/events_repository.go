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

type EventsRepository struct {
	conn PgConnection
}

func NewEventsRepo(conn PgConnection) *EventsRepository {
	return &EventsRepository{
		conn: conn,
	}
}

func (er *EventsRepository) Create(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	if event == nil {
		return uuid.UUID{}, errors.New("event is nil")
	}
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO events (title, description, category, starts_at, all_day, duration_minutes) 
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		event.Title,
		event.Description,
		string(event.Category),
		event.StartsAt,
		event.AllDay,
		event.DurationMinutes,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating event db error: " + err.Error())
	}
	return id, nil
}

func (er *EventsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	row := er.conn.QueryRow(ctx, `SELECT id, title, description, category, starts_at, all_day, duration_minutes, created_at, updated_at 
		FROM events WHERE id = $1;`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEventNotFound
		}
		return nil, errors.New("getting event by id error: " + err.Error())
	}
	return event, nil
}

func (er *EventsRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error) {
	rows, err := er.conn.Query(ctx, `SELECT id, title, description, category, starts_at, all_day, duration_minutes, created_at, updated_at 
		FROM events WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at;`, from, to)
	if err != nil {
		return nil, errors.New("listing events error: " + err.Error())
	}
	defer rows.Close()
	events := make([]*entity.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, errors.New("unmarshalling event error: " + err.Error())
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning events: " + err.Error())
	}
	return events, nil
}

func (er *EventsRepository) Update(ctx context.Context, event *entity.Event) error {
	ct, err := er.conn.Exec(ctx, `UPDATE events SET title = $1, description = $2, category = $3, starts_at = $4, all_day = $5, 
		duration_minutes = $6, updated_at = NOW() WHERE id = $7;`,
		event.Title,
		event.Description,
		string(event.Category),
		event.StartsAt,
		event.AllDay,
		event.DurationMinutes,
		event.ID,
	)
	if err != nil {
		return errors.New("error updating event: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEventNotFound
	}
	return nil
}

func (er *EventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM events WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting event: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEventNotFound
	}
	return nil
}

func (er *EventsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := er.conn.QueryRow(ctx, `SELECT COUNT(*) FROM events;`).Scan(&count); err != nil {
		return 0, errors.New("error counting events: " + err.Error())
	}
	return count, nil
}

func scanEvent(row rowScanner) (*entity.Event, error) {
	var (
		e        entity.Event
		category string
	)
	err := row.Scan(&e.ID, &e.Title, &e.Description, &category, &e.StartsAt, &e.AllDay, &e.DurationMinutes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Category = entity.Category(category)
	return &e, nil
}
