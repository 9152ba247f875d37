package schedule

import (
	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/notify"
)

// ListNotifications returns a copy of the notification log, newest first.
func (s *Store) ListNotifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AddNotification records a notification. The store owns id, creation time
// and the initial unread flag; the caller supplies the rest. New entries are
// prepended so the log reads newest first.
func (s *Store) AddNotification(n model.Notification) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.addNotificationLocked(n)
	s.persistLocked()
	return stored
}

func (s *Store) addNotificationLocked(n model.Notification) model.Notification {
	n.ID = s.newID()
	n.CreatedAt = s.now()
	n.Read = false

	s.notifications = append([]model.Notification{n}, s.notifications...)

	s.logger.Info("notification added",
		zap.String("id", n.ID),
		zap.String("type", string(n.Type)),
		zap.String("employee_id", n.EmployeeID))

	return n
}

// MarkNotificationAsRead flips the read flag to true. Marking an already-read
// notification again is a no-op; an unknown id is a logged no-op returning
// nil.
func (s *Store) MarkNotificationAsRead(id string) *model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if !s.notifications[i].Read {
				s.notifications[i].Read = true
				s.persistLocked()
			}
			updated := s.notifications[i]
			return &updated
		}
	}

	s.logger.Warn("mark read for unknown notification", zap.String("id", id))
	return nil
}

// SendShiftInvitation records a shift_invitation notification for the
// employee and invokes the dispatch collaborator. Unknown shift or employee
// ids are logged no-ops returning nil.
func (s *Store) SendShiftInvitation(shiftID, employeeID string) *model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift := s.findShiftLocked(shiftID)
	if shift == nil {
		s.logger.Warn("invitation for unknown shift", zap.String("shift_id", shiftID))
		return nil
	}
	emp := s.findEmployeeLocked(employeeID)
	if emp == nil {
		s.logger.Warn("invitation for unknown employee", zap.String("employee_id", employeeID))
		return nil
	}

	subject, body := notify.FormatShiftMessage(*emp, *shift)
	stored := s.addNotificationLocked(model.Notification{
		Type:       model.NotificationShiftInvitation,
		Title:      subject,
		Message:    body,
		ShiftID:    shiftID,
		EmployeeID: employeeID,
	})

	s.persistLocked()
	s.dispatchLocked(*emp, *shift)

	return &stored
}
