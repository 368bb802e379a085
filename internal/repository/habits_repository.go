package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

// Dates travel as UTC midnight, the date column keeps only Y-M-D
func dayParam(d dateutil.Day) time.Time {
	return d.Start(time.UTC)
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	if habit == nil {
		return uuid.UUID{}, errors.New("habit is nil")
	}
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (name, period, completed, date) VALUES ($1, $2, $3, $4) RETURNING id;`,
		habit.Name,
		string(habit.Period),
		habit.Completed,
		dayParam(habit.Date),
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrHabitExists
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT id, name, period, completed, date, created_at FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) ListByDate(ctx context.Context, day dateutil.Day) ([]entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT id, name, period, completed, date, created_at 
		FROM habits WHERE date = $1 ORDER BY period DESC, created_at;`, dayParam(day))
	if err != nil {
		return nil, errors.New("getting habits by date error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning habits: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) ToggleCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	var completed bool
	row := hr.conn.QueryRow(ctx, `UPDATE habits SET completed = NOT completed WHERE id = $1 RETURNING completed;`, id)
	if err := row.Scan(&completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, errorvalues.ErrHabitNotFound
		}
		return false, errors.New("error toggling habit: " + err.Error())
	}
	return completed, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) ListCompletedDays(ctx context.Context, name string) ([]dateutil.Day, error) {
	rows, err := hr.conn.Query(ctx, `SELECT DISTINCT date FROM habits WHERE name = $1 AND completed ORDER BY date;`, name)
	if err != nil {
		return nil, errors.New("getting completed days error: " + err.Error())
	}
	defer rows.Close()
	days := make([]dateutil.Day, 0)
	for rows.Next() {
		var date time.Time
		if err = rows.Scan(&date); err != nil {
			return nil, errors.New("completed day row parsing error: " + err.Error())
		}
		days = append(days, dateutil.DayOf(date, time.UTC))
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completed days rows error: " + err.Error())
	}
	return days, nil
}

func scanHabit(row rowScanner) (entity.Habit, error) {
	var (
		h      entity.Habit
		period string
		date   time.Time
	)
	if err := row.Scan(&h.ID, &h.Name, &period, &h.Completed, &date, &h.CreatedAt); err != nil {
		return entity.Habit{}, err
	}
	h.Period = entity.HabitPeriod(period)
	h.Date = dateutil.DayOf(date, time.UTC)
	return h, nil
}
