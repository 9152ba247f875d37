package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.store.ListEmployees())
}

func (s *Server) addEmployee(w http.ResponseWriter, r *http.Request) {
	var emp model.Employee
	if err := s.readJSON(r, &emp); err != nil {
		s.badRequest(w, r, err)
		return
	}

	if err := model.Validate(emp); err != nil {
		s.badRequest(w, r, err)
		return
	}
	for _, window := range emp.Availability {
		if err := model.ValidateAvailability(window); err != nil {
			s.badRequest(w, r, err)
			return
		}
	}

	s.writeJSON(w, r, http.StatusCreated, s.store.AddEmployee(emp))
}

type employeePatchRequest struct {
	Name         *string               `json:"name,omitempty"`
	Email        *string               `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string               `json:"phone,omitempty"`
	Role         *string               `json:"role,omitempty"`
	Availability *[]model.Availability `json:"availability,omitempty"`
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeePatchRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if req.Availability != nil {
		for _, window := range *req.Availability {
			if err := model.ValidateAvailability(window); err != nil {
				s.badRequest(w, r, err)
				return
			}
		}
	}

	updated := s.store.UpdateEmployee(chi.URLParam(r, "id"), schedule.EmployeePatch{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Availability: req.Availability,
	})
	if updated == nil {
		s.notFound(w, r, "employee not found")
		return
	}

	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteEmployee(chi.URLParam(r, "id")) {
		s.notFound(w, r, "employee not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
