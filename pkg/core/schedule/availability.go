package schedule

import (
	"slices"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/timeutil"
)

// IsAvailable reports whether the employee may fill the shift: the roles must
// match, and at least one availability window on the shift start's weekday
// must fully contain the shift's time span. Containment is the rule, not mere
// overlap: no accumulation across windows, and the weekday check uses the
// shift start only, so midnight-spanning shifts are not specially handled.
func IsAvailable(employee model.Employee, shift model.Shift) bool {
	if employee.Role != shift.Role {
		return false
	}

	shiftDay := timeutil.DayOfWeek(shift.Start)
	shiftStart := shift.Start.Hour()*60 + shift.Start.Minute()
	shiftEnd := shift.End.Hour()*60 + shift.End.Minute()

	for _, window := range employee.Availability {
		if window.DayOfWeek != shiftDay {
			continue
		}

		// Windows are validated at the input boundary; anything malformed
		// that slipped through simply never matches.
		windowStart, err := timeutil.ToMinutes(window.StartTime)
		if err != nil {
			continue
		}
		windowEnd, err := timeutil.ToMinutes(window.EndTime)
		if err != nil {
			continue
		}

		if shiftStart >= windowStart && shiftEnd <= windowEnd {
			return true
		}
	}

	return false
}

// AvailableEmployees filters the full employee set through IsAvailable.
// Already-assigned employees are not excluded; that is the caller's concern.
func (s *Store) AvailableEmployees(shift model.Shift) []model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := make([]model.Employee, 0)
	for _, emp := range s.employees {
		if IsAvailable(emp, shift) {
			emp.Availability = slices.Clone(emp.Availability)
			available = append(available, emp)
		}
	}
	return available
}
