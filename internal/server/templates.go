package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
	"github.com/jakechorley/schedule-master/pkg/core/timeutil"
)

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.store.ListTemplates())
}

func (s *Server) addTemplate(w http.ResponseWriter, r *http.Request) {
	var tpl model.Template
	if err := s.readJSON(r, &tpl); err != nil {
		s.badRequest(w, r, err)
		return
	}

	if err := model.Validate(tpl); err != nil {
		s.badRequest(w, r, err)
		return
	}
	for _, ts := range tpl.Shifts {
		if err := model.ValidateTemplateShift(ts); err != nil {
			s.badRequest(w, r, err)
			return
		}
	}

	s.writeJSON(w, r, http.StatusCreated, s.store.AddTemplate(tpl))
}

type templatePatchRequest struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Shifts      *[]model.TemplateShift `json:"shifts,omitempty" validate:"omitempty,dive"`
}

func (s *Server) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templatePatchRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if req.Shifts != nil {
		for _, ts := range *req.Shifts {
			if err := model.ValidateTemplateShift(ts); err != nil {
				s.badRequest(w, r, err)
				return
			}
		}
	}

	updated := s.store.UpdateTemplate(chi.URLParam(r, "id"), schedule.TemplatePatch{
		Name:        req.Name,
		Description: req.Description,
		Shifts:      req.Shifts,
	})
	if updated == nil {
		s.notFound(w, r, "template not found")
		return
	}

	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteTemplateShift(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteTemplateShift(chi.URLParam(r, "templateID"), chi.URLParam(r, "shiftID")) {
		s.notFound(w, r, "template shift not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type applyTemplateRequest struct {
	// StartDate anchors the projection; the projector places shifts within
	// this date's week without forward anchoring, so pass a Monday for
	// intuitive results. Empty means next Monday.
	StartDate string `json:"startDate,omitempty"`
	Weeks     int    `json:"weeks,omitempty" validate:"omitempty,min=1"`
}

func (s *Server) applyTemplate(w http.ResponseWriter, r *http.Request) {
	var req applyTemplateRequest
	if err := s.readJSON(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := model.Validate(req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	startDate, err := resolveStartDate(req.StartDate)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	weeks := req.Weeks
	if weeks == 0 {
		weeks = 1
	}

	created, err := s.store.ApplyTemplateWeeks(chi.URLParam(r, "id"), startDate, weeks)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if created == nil {
		s.notFound(w, r, "template not found")
		return
	}

	s.writeJSON(w, r, http.StatusCreated, created)
}

func resolveStartDate(raw string) (time.Time, error) {
	if raw == "" {
		return timeutil.NextMonday(time.Now()), nil
	}
	startDate, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid startDate %q, want YYYY-MM-DD: %w", raw, err)
	}
	return startDate, nil
}
