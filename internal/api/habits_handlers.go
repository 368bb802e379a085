package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/entity"
	"github.com/limbo/balance/pkg/httputil"
)

type HabitBody struct {
	Name   string             `json:"name"`
	Period entity.HabitPeriod `json:"period"`
	// Defaults to today
	Date string `json:"date"`
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body HabitBody
	err := httputil.DecodeJSON(r, &body)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.AddHabit(ctx, &service.HabitRequest{
		Name:   body.Name,
		Period: body.Period,
		Date:   body.Date,
	})
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.dayFromQuery(r)
	if err != nil {
		logger.Error("get habits error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitsService.HabitsForDay(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "get habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
	logger.Info("habits provided")
}

func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("toggle habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.ToggleHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "toggle habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit toggled")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.habitsService.RemoveHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		logger.Error("habit stats error: empty name")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "habit name is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.habitsService.Stats(ctx, name)
	if err != nil {
		writeServiceError(w, logger, "get habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
