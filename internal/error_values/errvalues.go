package errorvalues

import (
	"errors"
	"time"
)

var (
	ErrEventNotFound    = errors.New("event doesn't exist")
	ErrActivityNotFound = errors.New("wellness activity doesn't exist")
	ErrMoodNotFound     = errors.New("mood entry doesn't exist")
	ErrNoteNotFound     = errors.New("note doesn't exist")
	ErrHabitNotFound    = errors.New("habit doesn't exist")
	ErrHabitExists      = errors.New("such habit already exists for this day")
	ErrValidation       = errors.New("validation error")
	ErrFutureMood       = errors.New("mood can't be logged for the future")
	ErrInvalidRange     = errors.New("invalid range: start is after end")
)

// InvalidRangeError is returned by range queries called with start > end.
// It always means a bug in the caller.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return ErrInvalidRange.Error() + " (" + e.Start.Format(time.RFC3339) + " > " + e.End.Format(time.RFC3339) + ")"
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
