// Package notify implements the notification-dispatch collaborator. Real
// delivery (email, push) is out of scope; the shipped dispatcher only formats
// the message the way a mail sender would and logs it.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
)

// LogDispatcher formats shift notifications and writes them to the log
// instead of delivering them.
type LogDispatcher struct {
	logger *zap.Logger
}

// NewLogDispatcher creates the logging stub dispatcher.
func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Send formats and logs a shift notification for the employee. It never
// fails; the core does not depend on delivery anyway.
func (d *LogDispatcher) Send(ctx context.Context, employee model.Employee, shift model.Shift) error {
	subject, body := FormatShiftMessage(employee, shift)

	d.logger.Info("notification dispatched",
		zap.String("to", employee.Email),
		zap.String("employee_id", employee.ID),
		zap.String("shift_id", shift.ID),
		zap.String("subject", subject),
		zap.String("body", body))

	return nil
}

// FormatShiftMessage builds the subject and body of a shift assignment
// message.
func FormatShiftMessage(employee model.Employee, shift model.Shift) (subject, body string) {
	shiftDate := shift.Start.Format("Monday 2 January 2006")
	shiftTime := fmt.Sprintf("%s - %s", shift.Start.Format("15:04"), shift.End.Format("15:04"))

	subject = fmt.Sprintf("New work shift - %s", shiftDate)
	body = fmt.Sprintf(
		"Hello %s,\n\nA new work shift has been assigned to you:\n\nDate: %s\nTime: %s\nRole: %s\n\nPlease confirm your availability.",
		employee.Name, shiftDate, shiftTime, shift.Role)

	return subject, body
}
