package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jakechorley/schedule-master/pkg/core/model"
)

func (s *Server) listRoles(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.store.ListRoles())
}

type roleRequest struct {
	Name string `json:"name" validate:"required"`
}

func (s *Server) addRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, s.store.AddRole(req.Name))
}

func (s *Server) removeRole(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.store.RemoveRole(chi.URLParam(r, "name")))
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.store.ListNotifications())
}

type notificationRequest struct {
	Type       model.NotificationType `json:"type" validate:"required"`
	Title      string                 `json:"title" validate:"required"`
	Message    string                 `json:"message" validate:"required"`
	ShiftID    string                 `json:"shiftId,omitempty"`
	EmployeeID string                 `json:"employeeId,omitempty"`
}

func (s *Server) addNotification(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if !req.Type.IsValid() {
		s.badRequest(w, r, fmt.Errorf("unknown notification type %q", req.Type))
		return
	}

	stored := s.store.AddNotification(model.Notification{
		Type:       req.Type,
		Title:      req.Title,
		Message:    req.Message,
		ShiftID:    req.ShiftID,
		EmployeeID: req.EmployeeID,
	})

	s.writeJSON(w, r, http.StatusCreated, stored)
}

func (s *Server) markNotificationAsRead(w http.ResponseWriter, r *http.Request) {
	updated := s.store.MarkNotificationAsRead(chi.URLParam(r, "id"))
	if updated == nil {
		s.notFound(w, r, "notification not found")
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}
