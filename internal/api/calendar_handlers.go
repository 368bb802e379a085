package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/balance/pkg/httputil"
)

func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.dayFromQuery(r)
	if err != nil {
		logger.Error("get day error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.calendarService.Day(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "get day", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) GetWeek(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.dayFromQuery(r)
	if err != nil {
		logger.Error("get week error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	week, err := s.calendarService.Week(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "get week", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week)
}

func (s *Server) GetMonth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	now := s.clock.Now().In(s.loc)
	year, err := intFromQuery(r, "year", now.Year())
	if err != nil {
		logger.Error("get month error: invalid year")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
		return
	}
	month, err := intFromQuery(r, "month", int(now.Month()))
	if err != nil || month < 1 || month > 12 {
		logger.Error("get month error: invalid month")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month, expected 1-12", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.calendarService.Month(ctx, year, time.Month(month))
	if err != nil {
		writeServiceError(w, logger, "get month", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) GetYear(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, err := intFromQuery(r, "year", s.clock.Now().In(s.loc).Year())
	if err != nil {
		logger.Error("get year error: invalid year")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.calendarService.Year(ctx, year)
	if err != nil {
		writeServiceError(w, logger, "get year", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}
