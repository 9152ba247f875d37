package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

func (s *Server) listShifts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.store.ListShifts())
}

func (s *Server) addShift(w http.ResponseWriter, r *http.Request) {
	var shift model.Shift
	if err := s.readJSON(r, &shift); err != nil {
		s.badRequest(w, r, err)
		return
	}

	if err := model.Validate(shift); err != nil {
		s.badRequest(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, s.store.AddShift(shift))
}

type shiftPatchRequest struct {
	Title         *string    `json:"title,omitempty"`
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	EmployeeIDs   *[]string  `json:"employeeIds,omitempty"`
	RequiredStaff *int       `json:"requiredStaff,omitempty" validate:"omitempty,min=1"`
	Role          *string    `json:"role,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

func (s *Server) updateShift(w http.ResponseWriter, r *http.Request) {
	var req shiftPatchRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	updated := s.store.UpdateShift(chi.URLParam(r, "id"), schedule.ShiftPatch{
		Title:         req.Title,
		Start:         req.Start,
		End:           req.End,
		EmployeeIDs:   req.EmployeeIDs,
		RequiredStaff: req.RequiredStaff,
		Role:          req.Role,
		Notes:         req.Notes,
	})
	if updated == nil {
		s.notFound(w, r, "shift not found")
		return
	}

	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteShift(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteShift(chi.URLParam(r, "id")) {
		s.notFound(w, r, "shift not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) availableEmployees(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var target *model.Shift
	for _, shift := range s.store.ListShifts() {
		if shift.ID == id {
			found := shift
			target = &found
			break
		}
	}
	if target == nil {
		s.notFound(w, r, "shift not found")
		return
	}

	s.writeJSON(w, r, http.StatusOK, s.store.AvailableEmployees(*target))
}

type assignmentRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

func (s *Server) assignEmployee(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	updated := s.store.AssignEmployee(chi.URLParam(r, "id"), req.EmployeeID)
	if updated == nil {
		s.notFound(w, r, "shift not found")
		return
	}

	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) unassignEmployee(w http.ResponseWriter, r *http.Request) {
	updated := s.store.UnassignEmployee(chi.URLParam(r, "id"), chi.URLParam(r, "employeeID"))
	if updated == nil {
		s.notFound(w, r, "shift not found")
		return
	}

	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) sendInvitation(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	notification := s.store.SendShiftInvitation(chi.URLParam(r, "id"), req.EmployeeID)
	if notification == nil {
		s.notFound(w, r, "shift or employee not found")
		return
	}

	s.writeJSON(w, r, http.StatusCreated, notification)
}
