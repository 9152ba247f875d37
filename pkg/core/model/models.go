// Package model defines the domain types shared across the scheduling core.
// JSON tags match the persisted snapshot document layout.
package model

import "time"

// ShiftStatus is derived from the assigned-employee count against the
// required staff count. It is never set independently; every operation that
// mutates a shift's assignments recomputes it via DeriveStatus.
type ShiftStatus string

const (
	StatusUnassigned        ShiftStatus = "unassigned"
	StatusPartiallyAssigned ShiftStatus = "partially_assigned"
	StatusFullyAssigned     ShiftStatus = "fully_assigned"
)

// DeriveStatus is the status function: total over any assigned count and any
// required count >= 1. Over-assignment (assigned > required) still reads as
// fully assigned; the engine is deliberately permissive about staffing above
// the minimum.
func DeriveStatus(assigned, required int) ShiftStatus {
	switch {
	case assigned == 0:
		return StatusUnassigned
	case assigned < required:
		return StatusPartiallyAssigned
	default:
		return StatusFullyAssigned
	}
}

// NotificationType classifies shift-related notification events.
type NotificationType string

const (
	NotificationShiftInvitation NotificationType = "shift_invitation"
	NotificationShiftAccepted   NotificationType = "shift_accepted"
	NotificationShiftDeclined   NotificationType = "shift_declined"
	NotificationShiftReminder   NotificationType = "shift_reminder"
)

// IsValid reports whether t is one of the recognised notification types.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationShiftInvitation, NotificationShiftAccepted,
		NotificationShiftDeclined, NotificationShiftReminder:
		return true
	}
	return false
}

// Availability is a recurring weekly willingness window, owned by its
// employee. DayOfWeek uses Sunday = 0. StartTime must sort before EndTime;
// that is enforced at the input boundary, not inside the matcher.
type Availability struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

// Employee represents a schedulable staff member. Role is a plain string tag
// drawn from the store's role set; it is matched by value, so removing a role
// leaves existing employees untouched.
type Employee struct {
	ID           string         `json:"id"`
	Name         string         `json:"name" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone" validate:"required"`
	Role         string         `json:"role" validate:"required"`
	Availability []Availability `json:"availability" validate:"dive"`
}

// Shift is a concrete dated work shift. EmployeeIDs is not hard-capped at
// RequiredStaff; extra assignments are tolerated (e.g. training shadows).
type Shift struct {
	ID            string      `json:"id"`
	Title         string      `json:"title" validate:"required"`
	Start         time.Time   `json:"start" validate:"required"`
	End           time.Time   `json:"end" validate:"required,gtfield=Start"`
	EmployeeIDs   []string    `json:"employeeIds"`
	Status        ShiftStatus `json:"status"`
	RequiredStaff int         `json:"requiredStaff" validate:"min=1"`
	Role          string      `json:"role" validate:"required"`
	Notes         string      `json:"notes,omitempty"`
}

// TemplateShift is a day-of-week + time-of-day shift definition inside a
// template, not tied to any calendar date.
type TemplateShift struct {
	ID            string `json:"id"`
	Title         string `json:"title" validate:"required"`
	DayOfWeek     int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string `json:"endTime" validate:"required,datetime=15:04"`
	RequiredStaff int    `json:"requiredStaff" validate:"min=1"`
	Role          string `json:"role" validate:"required"`
}

// Template is a reusable weekly pattern of shift definitions.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Shifts      []TemplateShift `json:"shifts" validate:"dive"`
}

// Notification records a shift-related event for an employee. Append-only
// except for Read, which transitions false to true exactly once.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type" validate:"required"`
	Title      string           `json:"title" validate:"required"`
	Message    string           `json:"message" validate:"required"`
	Read       bool             `json:"read"`
	CreatedAt  time.Time        `json:"createdAt"`
	ShiftID    string           `json:"shiftId"`
	EmployeeID string           `json:"employeeId"`
}
