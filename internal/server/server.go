// Package server exposes the scheduling store over HTTP so UI collaborators
// have a JSON boundary to call.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

// Server wires the scheduling store to a chi router.
type Server struct {
	store  *schedule.Store
	logger *zap.Logger

	Mux *chi.Mux
}

// NewServer creates the HTTP server around the store.
func NewServer(store *schedule.Store, logger *zap.Logger) *Server {
	return &Server{
		store:  store,
		logger: logger,
		Mux:    chi.NewRouter(),
	}
}

// RegisterRoutes mounts every store operation under /api.
func (s *Server) RegisterRoutes() {
	s.Mux.Use(s.requestLogger)

	s.Mux.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.listEmployees)
			r.Post("/", s.addEmployee)
			r.Patch("/{id}", s.updateEmployee)
			r.Delete("/{id}", s.deleteEmployee)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", s.listShifts)
			r.Post("/", s.addShift)
			r.Patch("/{id}", s.updateShift)
			r.Delete("/{id}", s.deleteShift)
			r.Get("/{id}/available-employees", s.availableEmployees)
			r.Post("/{id}/assignments", s.assignEmployee)
			r.Delete("/{id}/assignments/{employeeID}", s.unassignEmployee)
			r.Post("/{id}/invitations", s.sendInvitation)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.listTemplates)
			r.Post("/", s.addTemplate)
			r.Patch("/{id}", s.updateTemplate)
			r.Delete("/{templateID}/shifts/{shiftID}", s.deleteTemplateShift)
			r.Post("/{id}/apply", s.applyTemplate)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", s.listRoles)
			r.Post("/", s.addRole)
			r.Delete("/{name}", s.removeRole)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.listNotifications)
			r.Post("/", s.addNotification)
			r.Post("/{id}/read", s.markNotificationAsRead)
		})
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
