package schedule

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
)

// ShiftPatch is a merge-patch over a shift record. It deliberately carries no
// Status field: status is derived state and is recomputed inside every
// mutation instead of being trusted from input.
type ShiftPatch struct {
	Title         *string
	Start         *time.Time
	End           *time.Time
	EmployeeIDs   *[]string
	RequiredStaff *int
	Role          *string
	Notes         *string
}

// ListShifts returns a copy of the shift list in insertion order.
func (s *Store) ListShifts() []model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyShifts(s.shifts)
}

// AddShift appends a shift, generating an id when missing and re-deriving the
// status from the assignment count rather than trusting the caller's value.
func (s *Store) AddShift(shift model.Shift) model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shift.ID == "" {
		shift.ID = s.newID()
	}
	if shift.EmployeeIDs == nil {
		shift.EmployeeIDs = []string{}
	}
	shift.Status = model.DeriveStatus(len(shift.EmployeeIDs), shift.RequiredStaff)
	s.shifts = append(s.shifts, shift)

	s.logger.Info("shift added",
		zap.String("id", shift.ID),
		zap.String("role", shift.Role),
		zap.Time("start", shift.Start))
	s.persistLocked()

	shift.EmployeeIDs = slices.Clone(shift.EmployeeIDs)
	return shift
}

// UpdateShift applies a merge-patch to the shift with the given id and
// returns the updated record, or nil when the id does not resolve. Status is
// always recomputed, so callers patching EmployeeIDs or RequiredStaff through
// this path cannot leave it stale.
func (s *Store) UpdateShift(id string, patch ShiftPatch) *model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.findShiftLocked(id)
	if shift == nil {
		s.logger.Warn("update for unknown shift", zap.String("id", id))
		return nil
	}

	if patch.Title != nil {
		shift.Title = *patch.Title
	}
	if patch.Start != nil {
		shift.Start = *patch.Start
	}
	if patch.End != nil {
		shift.End = *patch.End
	}
	if patch.EmployeeIDs != nil {
		shift.EmployeeIDs = *patch.EmployeeIDs
	}
	if patch.RequiredStaff != nil {
		shift.RequiredStaff = *patch.RequiredStaff
	}
	if patch.Role != nil {
		shift.Role = *patch.Role
	}
	if patch.Notes != nil {
		shift.Notes = *patch.Notes
	}
	shift.Status = model.DeriveStatus(len(shift.EmployeeIDs), shift.RequiredStaff)

	updated := *shift
	updated.EmployeeIDs = slices.Clone(shift.EmployeeIDs)
	s.persistLocked()
	return &updated
}

// DeleteShift removes the shift unconditionally. Notifications referencing
// the deleted id are left in place.
func (s *Store) DeleteShift(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shifts {
		if s.shifts[i].ID == id {
			s.shifts = append(s.shifts[:i], s.shifts[i+1:]...)
			s.logger.Info("shift deleted", zap.String("id", id))
			s.persistLocked()
			return true
		}
	}

	s.logger.Warn("delete for unknown shift", zap.String("id", id))
	return false
}

// AssignEmployee adds the employee to the shift's assignment set. The
// operation is idempotent, tolerates assignment beyond RequiredStaff, and is
// a logged no-op when the shift does not exist. It returns the authoritative
// updated record.
func (s *Store) AssignEmployee(shiftID, employeeID string) *model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.findShiftLocked(shiftID)
	if shift == nil {
		s.logger.Warn("assign for unknown shift", zap.String("shift_id", shiftID))
		return nil
	}

	if !slices.Contains(shift.EmployeeIDs, employeeID) {
		shift.EmployeeIDs = append(shift.EmployeeIDs, employeeID)
	}
	shift.Status = model.DeriveStatus(len(shift.EmployeeIDs), shift.RequiredStaff)

	s.logger.Info("employee assigned",
		zap.String("shift_id", shiftID),
		zap.String("employee_id", employeeID),
		zap.String("status", string(shift.Status)))

	updated := *shift
	updated.EmployeeIDs = slices.Clone(shift.EmployeeIDs)
	s.persistLocked()

	if emp := s.findEmployeeLocked(employeeID); emp != nil {
		s.dispatchLocked(*emp, updated)
	}

	return &updated
}

// UnassignEmployee removes the employee from the shift's assignment set when
// present (no-op otherwise) and recomputes the status.
func (s *Store) UnassignEmployee(shiftID, employeeID string) *model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.findShiftLocked(shiftID)
	if shift == nil {
		s.logger.Warn("unassign for unknown shift", zap.String("shift_id", shiftID))
		return nil
	}

	if i := slices.Index(shift.EmployeeIDs, employeeID); i >= 0 {
		shift.EmployeeIDs = append(shift.EmployeeIDs[:i], shift.EmployeeIDs[i+1:]...)
	}
	shift.Status = model.DeriveStatus(len(shift.EmployeeIDs), shift.RequiredStaff)

	s.logger.Info("employee unassigned",
		zap.String("shift_id", shiftID),
		zap.String("employee_id", employeeID),
		zap.String("status", string(shift.Status)))

	updated := *shift
	updated.EmployeeIDs = slices.Clone(shift.EmployeeIDs)
	s.persistLocked()
	return &updated
}
