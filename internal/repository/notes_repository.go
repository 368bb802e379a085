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

type NotesRepository struct {
	conn PgConnection
}

func NewNotesRepo(conn PgConnection) *NotesRepository {
	return &NotesRepository{
		conn: conn,
	}
}

func (nr *NotesRepository) Create(ctx context.Context, note *entity.Note) (uuid.UUID, error) {
	if note == nil {
		return uuid.UUID{}, errors.New("note is nil")
	}
	var id uuid.UUID
	row := nr.conn.QueryRow(ctx, `INSERT INTO notes (title, content, day) VALUES ($1, $2, $3) RETURNING id;`,
		note.Title,
		note.Content,
		note.Day,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating note db error: " + err.Error())
	}
	return id, nil
}

func (nr *NotesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var n entity.Note
	row := nr.conn.QueryRow(ctx, `SELECT id, title, content, day, created_at, updated_at FROM notes WHERE id = $1;`, id)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Day, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoteNotFound
		}
		return nil, errors.New("getting note by id error: " + err.Error())
	}
	return &n, nil
}

func (nr *NotesRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Note, error) {
	rows, err := nr.conn.Query(ctx, `SELECT id, title, content, day, created_at, updated_at FROM notes 
		WHERE day >= $1 AND day < $2 ORDER BY day, created_at;`, from, to)
	if err != nil {
		return nil, errors.New("listing notes error: " + err.Error())
	}
	defer rows.Close()
	notes := make([]*entity.Note, 0)
	for rows.Next() {
		n := entity.Note{}
		if err = rows.Scan(&n.ID, &n.Title, &n.Content, &n.Day, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, errors.New("unmarshalling note error: " + err.Error())
		}
		notes = append(notes, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning notes: " + err.Error())
	}
	return notes, nil
}

func (nr *NotesRepository) Update(ctx context.Context, note *entity.Note) error {
	ct, err := nr.conn.Exec(ctx, `UPDATE notes SET title = $1, content = $2, day = $3, updated_at = NOW() WHERE id = $4;`,
		note.Title, note.Content, note.Day, note.ID,
	)
	if err != nil {
		return errors.New("error updating note: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}

func (nr *NotesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `DELETE FROM notes WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting note: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}
