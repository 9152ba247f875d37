package schedule

import (
	"fmt"
	"slices"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/timeutil"
)

// TemplatePatch is a merge-patch over a template record.
type TemplatePatch struct {
	Name        *string
	Description *string
	Shifts      *[]model.TemplateShift
}

// ListTemplates returns a copy of the template list.
func (s *Store) ListTemplates() []model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyTemplates(s.templates)
}

// AddTemplate appends a template, generating ids for the template and any
// template shift missing one.
func (s *Store) AddTemplate(t model.Template) model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.newID()
	}
	for i := range t.Shifts {
		if t.Shifts[i].ID == "" {
			t.Shifts[i].ID = s.newID()
		}
	}
	s.templates = append(s.templates, t)

	s.logger.Info("template added", zap.String("id", t.ID), zap.Int("shifts", len(t.Shifts)))
	s.persistLocked()

	t.Shifts = slices.Clone(t.Shifts)
	return t
}

// UpdateTemplate applies a merge-patch to the template with the given id and
// returns the updated record, or nil when the id does not resolve.
func (s *Store) UpdateTemplate(id string, patch TemplatePatch) *model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl := s.findTemplateLocked(id)
	if tpl == nil {
		s.logger.Warn("update for unknown template", zap.String("id", id))
		return nil
	}

	if patch.Name != nil {
		tpl.Name = *patch.Name
	}
	if patch.Description != nil {
		tpl.Description = *patch.Description
	}
	if patch.Shifts != nil {
		tpl.Shifts = *patch.Shifts
		for i := range tpl.Shifts {
			if tpl.Shifts[i].ID == "" {
				tpl.Shifts[i].ID = s.newID()
			}
		}
	}

	updated := *tpl
	updated.Shifts = slices.Clone(tpl.Shifts)
	s.persistLocked()
	return &updated
}

// DeleteTemplateShift removes one shift definition from a template.
func (s *Store) DeleteTemplateShift(templateID, shiftID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl := s.findTemplateLocked(templateID)
	if tpl == nil {
		s.logger.Warn("delete shift for unknown template", zap.String("template_id", templateID))
		return false
	}

	for i := range tpl.Shifts {
		if tpl.Shifts[i].ID == shiftID {
			tpl.Shifts = append(tpl.Shifts[:i], tpl.Shifts[i+1:]...)
			s.persistLocked()
			return true
		}
	}

	s.logger.Warn("delete for unknown template shift",
		zap.String("template_id", templateID),
		zap.String("shift_id", shiftID))
	return false
}

// ApplyTemplate projects the template onto the week containing startDate and
// appends the generated shifts in one batch. Each template shift lands on
// startDate shifted by (dayOfWeek - startDate's weekday) days — the placement
// is literal, not a next-occurrence search, and can move backward within the
// week. Callers wanting intuitive forward placement pass the Monday of the
// target week (timeutil.NextMonday). An unknown template id is a logged
// no-op.
func (s *Store) ApplyTemplate(templateID string, startDate time.Time) ([]model.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.applyTemplateLocked(templateID, startDate)
	if err != nil || created == nil {
		return created, err
	}

	s.persistLocked()
	return created, nil
}

// ApplyTemplateWeeks projects the template onto the given number of
// consecutive weeks, anchored at startDate. Week anchors are enumerated with
// a weekly recurrence rule; each anchor then uses the same single-week
// projection as ApplyTemplate.
func (s *Store) ApplyTemplateWeeks(templateID string, startDate time.Time, weeks int) ([]model.Shift, error) {
	if weeks < 1 {
		return nil, fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Count:   weeks,
		Dtstart: startDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly recurrence: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Pre-allocated so a template with zero shifts still reads as found;
	// nil is reserved for an unresolved template id.
	created := make([]model.Shift, 0)
	for _, anchor := range rule.All() {
		batch, err := s.applyTemplateLocked(templateID, anchor)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return nil, nil
		}
		created = append(created, batch...)
	}

	s.persistLocked()
	return created, nil
}

func (s *Store) applyTemplateLocked(templateID string, startDate time.Time) ([]model.Shift, error) {
	tpl := s.findTemplateLocked(templateID)
	if tpl == nil {
		s.logger.Warn("apply for unknown template", zap.String("template_id", templateID))
		return nil, nil
	}

	created := make([]model.Shift, 0, len(tpl.Shifts))
	for _, ts := range tpl.Shifts {
		date := startDate.AddDate(0, 0, ts.DayOfWeek-timeutil.DayOfWeek(startDate))

		start, err := timeutil.At(date, ts.StartTime)
		if err != nil {
			return nil, fmt.Errorf("template %q shift %q: %w", tpl.Name, ts.Title, err)
		}
		end, err := timeutil.At(date, ts.EndTime)
		if err != nil {
			return nil, fmt.Errorf("template %q shift %q: %w", tpl.Name, ts.Title, err)
		}

		created = append(created, model.Shift{
			ID:            s.newID(),
			Title:         ts.Title,
			Start:         start,
			End:           end,
			EmployeeIDs:   []string{},
			Status:        model.StatusUnassigned,
			RequiredStaff: ts.RequiredStaff,
			Role:          ts.Role,
		})
	}

	s.shifts = append(s.shifts, created...)

	s.logger.Info("template applied",
		zap.String("template_id", templateID),
		zap.Time("start_date", startDate),
		zap.Int("shifts_created", len(created)))

	return created, nil
}
