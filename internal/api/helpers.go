package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/httputil"
)

const requestTimeout = time.Second * 10

var notFoundErrors = []error{
	errorvalues.ErrEventNotFound,
	errorvalues.ErrActivityNotFound,
	errorvalues.ErrMoodNotFound,
	errorvalues.ErrNoteNotFound,
	errorvalues.ErrHabitNotFound,
}

// writeServiceError maps service errors onto response codes. Unknown errors
// are logged with details and hidden from the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			logger.Error(op + " error: " + nf.Error())
			httputil.WriteErrorResponse(w, http.StatusNotFound, nf.Error(), nil)
			return
		}
	}
	switch {
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrFutureMood):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrHabitExists):
		logger.Error(op + " error: duplicate habit")
		httputil.WriteErrorResponse(w, http.StatusConflict, errorvalues.ErrHabitExists.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while trying to "+op, nil)
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// dayFromQuery reads ?date=YYYY-MM-DD, today when absent
func (s *Server) dayFromQuery(r *http.Request) (dateutil.Day, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return dateutil.DayOf(s.clock.Now(), s.loc), nil
	}
	return dateutil.ParseDay(raw)
}

// intFromQuery returns def for an absent parameter and an error for a malformed one
func intFromQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
