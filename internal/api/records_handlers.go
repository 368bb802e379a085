package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/entity"
	"github.com/limbo/balance/pkg/httputil"
)

type EventBody struct {
	Title       string          `json:"title"`
	Description string          `json:"desc"`
	Category    entity.Category `json:"category"`
	Date        string          `json:"date"`
	// HH:MM, empty for all-day events
	Time     string `json:"time"`
	Duration *int   `json:"duration"`
}

func (b *EventBody) request() *service.EventRequest {
	return &service.EventRequest{
		Title:           b.Title,
		Description:     b.Description,
		Category:        b.Category,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: b.Duration,
	}
}

type ActivityBody struct {
	Name     string          `json:"name"`
	Category entity.Category `json:"category"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Duration *int            `json:"duration"`
}

func (b *ActivityBody) request() *service.ActivityRequest {
	return &service.ActivityRequest{
		Name:            b.Name,
		Category:        b.Category,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: b.Duration,
	}
}

type MoodBody struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
	// Set when backfilling a past entry
	At *time.Time `json:"at"`
}

type NoteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

func (b *NoteBody) request() *service.NoteRequest {
	return &service.NoteRequest{
		Title:   b.Title,
		Content: b.Content,
		Date:    b.Date,
	}
}

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body EventBody
	err := httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("create event error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	event, err := s.recordsService.AddEvent(ctx, body.request())
	if err != nil {
		writeServiceError(w, logger, "create event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, event)
	logger.Info("event created")
}

func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get event error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	event, err := s.recordsService.GetEvent(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, event)
}

func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("update event error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id in path value", nil)
		return
	}
	var body EventBody
	err = httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("update event error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	event, err := s.recordsService.UpdateEvent(ctx, id, body.request())
	if err != nil {
		writeServiceError(w, logger, "update event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, event)
	logger.Info("event updated")
}

func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("event deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.recordsService.DeleteEvent(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("event deleted")
}

func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body ActivityBody
	err := httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("create activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activity, err := s.recordsService.AddActivity(ctx, body.request())
	if err != nil {
		writeServiceError(w, logger, "create activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, activity)
	logger.Info("wellness activity created")
}

func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get activity error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activity, err := s.recordsService.GetActivity(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, activity)
}

func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("update activity error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	var body ActivityBody
	err = httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("update activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activity, err := s.recordsService.UpdateActivity(ctx, id, body.request())
	if err != nil {
		writeServiceError(w, logger, "update activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, activity)
	logger.Info("wellness activity updated")
}

func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("activity deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.recordsService.DeleteActivity(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete activity", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("wellness activity deleted")
}

func (s *Server) LogMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body MoodBody
	err := httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("log mood error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	level, err := entity.ParseMoodLevel(body.Mood)
	if err != nil {
		logger.Error("log mood error: unknown mood", slog.String("mood", body.Mood))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown mood", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.recordsService.LogMood(ctx, &service.MoodRequest{
		Level: level,
		Note:  body.Note,
		At:    body.At,
	})
	if err != nil {
		writeServiceError(w, logger, "log mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("mood logged")
}

func (s *Server) DeleteMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("mood deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mood id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.recordsService.DeleteMood(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete mood", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("mood deleted")
}

func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body NoteBody
	err := httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("create note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	note, err := s.recordsService.AddNote(ctx, body.request())
	if err != nil {
		writeServiceError(w, logger, "create note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("note created")
}

func (s *Server) GetNotes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.dayFromQuery(r)
	if err != nil {
		logger.Error("get notes error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	notes, err := s.recordsService.NotesForDay(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "get notes", err)
		return
	}
	if notes == nil {
		notes = []*entity.Note{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":  day,
		"notes": notes,
	})
}

func (s *Server) UpdateNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("update note error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid note id in path value", nil)
		return
	}
	var body NoteBody
	err = httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("update note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	note, err := s.recordsService.UpdateNote(ctx, id, body.request())
	if err != nil {
		writeServiceError(w, logger, "update note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
	logger.Info("note updated")
}

func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("note deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid note id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.recordsService.DeleteNote(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("note deleted")
}
