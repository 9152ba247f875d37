// Package schedule implements the scheduling store: the state container
// owning employees, shifts, templates, roles and notifications, together with
// the availability matcher, the shift assignment engine and the template
// projector that operate on it.
package schedule

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/storage"
)

// Persister is the external storage collaborator. Load restores the snapshot
// at startup (nil means nothing persisted yet); Save flushes it after
// mutations.
type Persister interface {
	Load(ctx context.Context) (*storage.Snapshot, error)
	Save(ctx context.Context, snap *storage.Snapshot) error
}

// Dispatcher is the notification-delivery collaborator. The store invokes it
// after committing its own state and does not depend on the result.
type Dispatcher interface {
	Send(ctx context.Context, employee model.Employee, shift model.Shift) error
}

// Store holds the whole scheduling state behind a single coarse mutex. None
// of the algorithms were designed for finer-grained concurrent access, so
// every operation is one read-modify-write under the lock.
type Store struct {
	mu            sync.Mutex
	employees     []model.Employee
	shifts        []model.Shift
	templates     []model.Template
	roles         []string
	notifications []model.Notification

	persister  Persister
	dispatcher Dispatcher
	logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

// Options configures a Store. Persister and Dispatcher may be nil, in which
// case the corresponding collaborator call is skipped.
type Options struct {
	Persister    Persister
	Dispatcher   Dispatcher
	Logger       *zap.Logger
	DefaultRoles []string

	// Now and NewID exist for deterministic tests; they default to time.Now
	// and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// NewStore creates an empty store seeded with the default role set.
func NewStore(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	roles := make([]string, len(opts.DefaultRoles))
	copy(roles, opts.DefaultRoles)

	return &Store{
		roles:      roles,
		persister:  opts.Persister,
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger,
		now:        opts.Now,
		newID:      opts.NewID,
	}
}

// Load restores the persisted snapshot, replacing the in-memory state. A nil
// snapshot (nothing persisted yet) leaves the default state untouched.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	snap, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		s.logger.Info("no persisted schedule found, starting fresh")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = snap.Employees
	s.shifts = snap.Shifts
	s.templates = snap.Templates
	s.notifications = snap.Notifications
	if snap.Roles != nil {
		s.roles = snap.Roles
	}

	s.logger.Info("schedule loaded",
		zap.Int("employees", len(s.employees)),
		zap.Int("shifts", len(s.shifts)),
		zap.Int("templates", len(s.templates)),
		zap.Int("roles", len(s.roles)),
		zap.Int("notifications", len(s.notifications)))

	return nil
}

// Snapshot returns a copy of the current state as the persisted document.
func (s *Store) Snapshot() *storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *storage.Snapshot {
	snap := &storage.Snapshot{
		Employees:     copyEmployees(s.employees),
		Shifts:        copyShifts(s.shifts),
		Templates:     copyTemplates(s.templates),
		Roles:         make([]string, len(s.roles)),
		Notifications: make([]model.Notification, len(s.notifications)),
	}
	copy(snap.Roles, s.roles)
	copy(snap.Notifications, s.notifications)
	return snap
}

// The copy helpers clone the nested slices too, so returned records never
// alias store state: callers may mutate what they get back without reaching
// behind the mutex.

func copyEmployees(in []model.Employee) []model.Employee {
	out := make([]model.Employee, len(in))
	for i, emp := range in {
		emp.Availability = slices.Clone(emp.Availability)
		out[i] = emp
	}
	return out
}

func copyShifts(in []model.Shift) []model.Shift {
	out := make([]model.Shift, len(in))
	for i, shift := range in {
		shift.EmployeeIDs = slices.Clone(shift.EmployeeIDs)
		out[i] = shift
	}
	return out
}

func copyTemplates(in []model.Template) []model.Template {
	out := make([]model.Template, len(in))
	for i, tpl := range in {
		tpl.Shifts = slices.Clone(tpl.Shifts)
		out[i] = tpl
	}
	return out
}

// persistLocked flushes the snapshot through the persistence collaborator.
// The state change is already committed; a failed save is logged, never
// surfaced to the caller.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), s.snapshotLocked()); err != nil {
		s.logger.Warn("failed to save snapshot", zap.Error(err))
	}
}

// dispatchLocked invokes the notification collaborator. Delivery failures are
// logged and otherwise ignored.
func (s *Store) dispatchLocked(employee model.Employee, shift model.Shift) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Send(context.Background(), employee, shift); err != nil {
		s.logger.Warn("failed to dispatch notification",
			zap.String("employee_id", employee.ID),
			zap.String("shift_id", shift.ID),
			zap.Error(err))
	}
}

func (s *Store) findEmployeeLocked(id string) *model.Employee {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return &s.employees[i]
		}
	}
	return nil
}

func (s *Store) findShiftLocked(id string) *model.Shift {
	for i := range s.shifts {
		if s.shifts[i].ID == id {
			return &s.shifts[i]
		}
	}
	return nil
}

func (s *Store) findTemplateLocked(id string) *model.Template {
	for i := range s.templates {
		if s.templates[i].ID == id {
			return &s.templates[i]
		}
	}
	return nil
}
