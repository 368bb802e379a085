package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/clock"
)

type Server struct {
	mx              *chi.Mux
	recordsService  service.RecordsServiceI
	habitsService   service.HabitsServiceI
	calendarService service.CalendarServiceI
	statsService    service.StatsServiceI
	importService   service.ImportServiceI
	clock           clock.Clock
	loc             *time.Location
}

type ServicesList struct {
	RecordsService  service.RecordsServiceI
	HabitsService   service.HabitsServiceI
	CalendarService service.CalendarServiceI
	StatsService    service.StatsServiceI
	ImportService   service.ImportServiceI
	// Used to resolve "today" when a request omits the date
	Clock    clock.Clock
	Location *time.Location
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		recordsService:  servicesOptions.RecordsService,
		habitsService:   servicesOptions.HabitsService,
		calendarService: servicesOptions.CalendarService,
		statsService:    servicesOptions.StatsService,
		importService:   servicesOptions.ImportService,
		clock:           servicesOptions.Clock,
		loc:             servicesOptions.Location,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.clock == nil {
		s.clock = clock.System{Loc: s.loc}
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Post("/", s.CreateEvent)
			r.Get("/{id}", s.GetEvent)
			r.Put("/{id}", s.UpdateEvent)
			r.Delete("/{id}", s.DeleteEvent)
		})
		r.Route("/wellness", func(r chi.Router) {
			r.Post("/", s.CreateActivity)
			r.Get("/{id}", s.GetActivity)
			r.Put("/{id}", s.UpdateActivity)
			r.Delete("/{id}", s.DeleteActivity)
		})
		r.Route("/moods", func(r chi.Router) {
			r.Post("/", s.LogMood)
			r.Delete("/{id}", s.DeleteMood)
		})
		r.Route("/notes", func(r chi.Router) {
			r.Post("/", s.CreateNote)
			r.Get("/", s.GetNotes)
			r.Put("/{id}", s.UpdateNote)
			r.Delete("/{id}", s.DeleteNote)
		})
		r.Route("/habits", func(r chi.Router) {
			r.Post("/", s.CreateHabit)
			r.Get("/", s.GetHabits)
			r.Get("/stats", s.GetHabitStats)
			r.Post("/{id}/toggle", s.ToggleHabit)
			r.Delete("/{id}", s.DeleteHabit)
		})
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/day", s.GetDay)
			r.Get("/week", s.GetWeek)
			r.Get("/month", s.GetMonth)
			r.Get("/year", s.GetYear)
		})
		r.Get("/stats", s.GetOverview)
		r.Post("/import", s.Import)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts the server down gracefully
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return errors.New("serving error: " + err.Error())
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	if err = <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.New("serving error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
