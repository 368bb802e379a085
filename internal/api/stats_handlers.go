package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/balance/pkg/httputil"
)

func (s *Server) GetOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	overview, err := s.statsService.Overview(ctx)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
}

// Import accepts a legacy JSON export as the raw request body
func (s *Server) Import(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if r.Body == nil || r.Body == http.NoBody {
		logger.Error("import error: empty body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", httputil.ErrEmptyBody)
		return
	}
	defer r.Body.Close()
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()
	report, err := s.importService.Import(ctx, r.Body)
	if err != nil {
		writeServiceError(w, logger, "import", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("legacy data imported",
		slog.Int("events", report.Events),
		slog.Int("wellness", report.Wellness),
		slog.Int("moods", report.Moods),
		slog.Int("notes", report.Notes),
		slog.Int("habits", report.Habits),
		slog.Int("skipped", len(report.Skipped)),
	)
}
