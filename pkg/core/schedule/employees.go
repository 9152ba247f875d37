package schedule

import (
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
)

// EmployeePatch is a merge-patch over an employee record; nil fields are left
// untouched.
type EmployeePatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Role         *string
	Availability *[]model.Availability
}

// ListEmployees returns a copy of the employee list in insertion order.
func (s *Store) ListEmployees() []model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyEmployees(s.employees)
}

// AddEmployee appends an employee, generating an id when the caller did not
// supply one, and returns the stored record.
func (s *Store) AddEmployee(e model.Employee) model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = s.newID()
	}
	s.employees = append(s.employees, e)

	s.logger.Info("employee added", zap.String("id", e.ID), zap.String("role", e.Role))
	s.persistLocked()

	e.Availability = slices.Clone(e.Availability)
	return e
}

// UpdateEmployee applies a merge-patch to the employee with the given id and
// returns the updated record, or nil when the id does not resolve.
func (s *Store) UpdateEmployee(id string, patch EmployeePatch) *model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp := s.findEmployeeLocked(id)
	if emp == nil {
		s.logger.Warn("update for unknown employee", zap.String("id", id))
		return nil
	}

	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.Email != nil {
		emp.Email = *patch.Email
	}
	if patch.Phone != nil {
		emp.Phone = *patch.Phone
	}
	if patch.Role != nil {
		emp.Role = *patch.Role
	}
	if patch.Availability != nil {
		emp.Availability = *patch.Availability
	}

	updated := *emp
	updated.Availability = slices.Clone(emp.Availability)
	s.persistLocked()
	return &updated
}

// DeleteEmployee removes the employee with the given id. Shifts keep any
// assignment referencing the deleted id; orphaned references are tolerated,
// matching the role-removal policy.
func (s *Store) DeleteEmployee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			s.logger.Info("employee deleted", zap.String("id", id))
			s.persistLocked()
			return true
		}
	}

	s.logger.Warn("delete for unknown employee", zap.String("id", id))
	return false
}
