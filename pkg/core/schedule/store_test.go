package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/storage"
)

type mockPersister struct {
	loadSnap  *storage.Snapshot
	loadErr   error
	saveErr   error
	saveCalls int
	lastSaved *storage.Snapshot
}

func (m *mockPersister) Load(ctx context.Context) (*storage.Snapshot, error) {
	return m.loadSnap, m.loadErr
}

func (m *mockPersister) Save(ctx context.Context, snap *storage.Snapshot) error {
	m.saveCalls++
	m.lastSaved = snap
	return m.saveErr
}

type mockDispatcher struct {
	sendErr   error
	sendCalls int
	employees []model.Employee
	shifts    []model.Shift
}

func (m *mockDispatcher) Send(ctx context.Context, employee model.Employee, shift model.Shift) error {
	m.sendCalls++
	m.employees = append(m.employees, employee)
	m.shifts = append(m.shifts, shift)
	return m.sendErr
}

// newTestStore builds a store with sequential ids and a fixed clock so
// assertions stay deterministic.
func newTestStore(opts Options) *Store {
	if opts.NewID == nil {
		next := 0
		opts.NewID = func() string {
			next++
			return fmt.Sprintf("id-%d", next)
		}
	}
	if opts.Now == nil {
		opts.Now = func() time.Time {
			return time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
		}
	}
	return NewStore(opts)
}

func TestLoadRestoresSnapshot(t *testing.T) {
	persister := &mockPersister{
		loadSnap: &storage.Snapshot{
			Employees: []model.Employee{{ID: "e1", Name: "Marie", Role: "cuisine"}},
			Shifts:    []model.Shift{{ID: "s1", Title: "Lunch service"}},
			Roles:     []string{"cuisine"},
		},
	}
	store := newTestStore(Options{Persister: persister, DefaultRoles: []string{"menage", "cuisine", "service"}})

	require.NoError(t, store.Load(context.Background()))

	assert.Len(t, store.ListEmployees(), 1)
	assert.Len(t, store.ListShifts(), 1)
	assert.Equal(t, []string{"cuisine"}, store.ListRoles())
}

func TestLoadNilSnapshotKeepsDefaults(t *testing.T) {
	store := newTestStore(Options{
		Persister:    &mockPersister{},
		DefaultRoles: []string{"menage", "cuisine", "service"},
	})

	require.NoError(t, store.Load(context.Background()))

	assert.Empty(t, store.ListEmployees())
	assert.Equal(t, []string{"menage", "cuisine", "service"}, store.ListRoles())
}

func TestLoadError(t *testing.T) {
	store := newTestStore(Options{Persister: &mockPersister{loadErr: assert.AnError}})

	err := store.Load(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMutationsPersistSnapshot(t *testing.T) {
	persister := &mockPersister{}
	store := newTestStore(Options{Persister: persister})

	store.AddEmployee(model.Employee{Name: "Marie", Role: "cuisine"})
	require.Equal(t, 1, persister.saveCalls)
	require.NotNil(t, persister.lastSaved)
	assert.Len(t, persister.lastSaved.Employees, 1)

	// A failing save is logged and ignored; the state change stays committed.
	persister.saveErr = assert.AnError
	store.AddRole("plonge")
	assert.Equal(t, 2, persister.saveCalls)
	assert.Contains(t, store.ListRoles(), "plonge")
}

func TestAssignDispatchesToKnownEmployee(t *testing.T) {
	dispatcher := &mockDispatcher{}
	store := newTestStore(Options{Dispatcher: dispatcher})

	emp := store.AddEmployee(model.Employee{Name: "Marie", Email: "marie@example.com", Role: "cuisine"})
	shift := store.AddShift(model.Shift{Title: "Lunch service", RequiredStaff: 1, Role: "cuisine"})

	updated := store.AssignEmployee(shift.ID, emp.ID)
	require.NotNil(t, updated)

	require.Equal(t, 1, dispatcher.sendCalls)
	assert.Equal(t, emp.ID, dispatcher.employees[0].ID)
	assert.Equal(t, shift.ID, dispatcher.shifts[0].ID)
	// The dispatched shift already carries the post-assignment state.
	assert.Equal(t, model.StatusFullyAssigned, dispatcher.shifts[0].Status)
}

func TestAssignUnknownEmployeeSkipsDispatch(t *testing.T) {
	dispatcher := &mockDispatcher{}
	store := newTestStore(Options{Dispatcher: dispatcher})

	shift := store.AddShift(model.Shift{Title: "Lunch service", RequiredStaff: 2, Role: "cuisine"})

	updated := store.AssignEmployee(shift.ID, "ghost")
	require.NotNil(t, updated)
	assert.Equal(t, model.StatusPartiallyAssigned, updated.Status)
	assert.Zero(t, dispatcher.sendCalls)
}

func TestDispatchFailureIsIgnored(t *testing.T) {
	dispatcher := &mockDispatcher{sendErr: assert.AnError}
	store := newTestStore(Options{Dispatcher: dispatcher})

	emp := store.AddEmployee(model.Employee{Name: "Marie", Role: "cuisine"})
	shift := store.AddShift(model.Shift{Title: "Lunch service", RequiredStaff: 1, Role: "cuisine"})

	updated := store.AssignEmployee(shift.ID, emp.ID)
	require.NotNil(t, updated)
	assert.Equal(t, model.StatusFullyAssigned, updated.Status)
	assert.Contains(t, store.ListShifts()[0].EmployeeIDs, emp.ID)
}

func TestNotificationsPrependNewestFirst(t *testing.T) {
	store := newTestStore(Options{})

	first := store.AddNotification(model.Notification{Type: model.NotificationShiftReminder, Title: "first", Message: "m"})
	second := store.AddNotification(model.Notification{Type: model.NotificationShiftReminder, Title: "second", Message: "m"})

	list := store.ListNotifications()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.False(t, list[0].Read)
	assert.Equal(t, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), list[0].CreatedAt)
}

func TestMarkNotificationAsRead(t *testing.T) {
	persister := &mockPersister{}
	store := newTestStore(Options{Persister: persister})

	n := store.AddNotification(model.Notification{Type: model.NotificationShiftReminder, Title: "t", Message: "m"})
	savesAfterAdd := persister.saveCalls

	updated := store.MarkNotificationAsRead(n.ID)
	require.NotNil(t, updated)
	assert.True(t, updated.Read)
	assert.Equal(t, savesAfterAdd+1, persister.saveCalls)

	// Marking again is a no-op and does not persist.
	again := store.MarkNotificationAsRead(n.ID)
	require.NotNil(t, again)
	assert.True(t, again.Read)
	assert.Equal(t, savesAfterAdd+1, persister.saveCalls)

	assert.Nil(t, store.MarkNotificationAsRead("ghost"))
}

func TestSendShiftInvitation(t *testing.T) {
	dispatcher := &mockDispatcher{}
	store := newTestStore(Options{Dispatcher: dispatcher})

	emp := store.AddEmployee(model.Employee{Name: "Marie", Email: "marie@example.com", Role: "cuisine"})
	shift := store.AddShift(model.Shift{
		Title:         "Lunch service",
		Start:         time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC),
		RequiredStaff: 1,
		Role:          "cuisine",
	})

	n := store.SendShiftInvitation(shift.ID, emp.ID)
	require.NotNil(t, n)
	assert.Equal(t, model.NotificationShiftInvitation, n.Type)
	assert.Equal(t, shift.ID, n.ShiftID)
	assert.Equal(t, emp.ID, n.EmployeeID)
	assert.NotEmpty(t, n.Title)
	assert.NotEmpty(t, n.Message)
	assert.False(t, n.Read)

	assert.Equal(t, 1, dispatcher.sendCalls)
	assert.Len(t, store.ListNotifications(), 1)

	assert.Nil(t, store.SendShiftInvitation("ghost", emp.ID))
	assert.Nil(t, store.SendShiftInvitation(shift.ID, "ghost"))
	assert.Len(t, store.ListNotifications(), 1)
}

func TestReturnedRecordsDoNotAliasState(t *testing.T) {
	store := newTestStore(Options{})

	emp := store.AddEmployee(model.Employee{
		Name: "Marie", Role: "cuisine",
		Availability: []model.Availability{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}},
	})
	shift := store.AddShift(model.Shift{Title: "Lunch service", RequiredStaff: 2, Role: "cuisine"})
	assigned := store.AssignEmployee(shift.ID, emp.ID)
	require.NotNil(t, assigned)

	// Writing into returned copies must not reach the store's own state.
	assigned.EmployeeIDs[0] = "tampered"
	shifts := store.ListShifts()
	shifts[0].EmployeeIDs[0] = "tampered"
	employees := store.ListEmployees()
	employees[0].Availability[0].StartTime = "00:00"
	snap := store.Snapshot()
	snap.Shifts[0].EmployeeIDs[0] = "tampered"
	snap.Employees[0].Availability[0].StartTime = "00:00"

	assert.Equal(t, []string{emp.ID}, store.ListShifts()[0].EmployeeIDs)
	assert.Equal(t, "09:00", store.ListEmployees()[0].Availability[0].StartTime)
}

// TestSchedulingScenario walks the whole flow: employees with availability,
// a template projected onto a week, availability matching and assignment.
func TestSchedulingScenario(t *testing.T) {
	persister := &mockPersister{}
	dispatcher := &mockDispatcher{}
	store := newTestStore(Options{
		Persister:    persister,
		Dispatcher:   dispatcher,
		DefaultRoles: []string{"menage", "cuisine", "service"},
	})

	cook := store.AddEmployee(model.Employee{
		Name: "Marie", Email: "marie@example.com", Role: "cuisine",
		Availability: []model.Availability{{DayOfWeek: 3, StartTime: "08:00", EndTime: "16:00"}},
	})
	waiter := store.AddEmployee(model.Employee{
		Name: "Paul", Email: "paul@example.com", Role: "service",
		Availability: []model.Availability{{DayOfWeek: 3, StartTime: "08:00", EndTime: "16:00"}},
	})

	tpl := store.AddTemplate(model.Template{
		Name: "Standard week",
		Shifts: []model.TemplateShift{
			{Title: "Wednesday lunch", DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00", RequiredStaff: 2, Role: "cuisine"},
		},
	})

	// 2026-01-05 is a Monday.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	created, err := store.ApplyTemplate(tpl.ID, monday)
	require.NoError(t, err)
	require.Len(t, created, 1)

	shift := created[0]
	assert.Equal(t, time.Wednesday, shift.Start.Weekday())
	assert.Equal(t, model.StatusUnassigned, shift.Status)

	// Only the cook matches: the waiter has the window but the wrong role.
	available := store.AvailableEmployees(shift)
	require.Len(t, available, 1)
	assert.Equal(t, cook.ID, available[0].ID)
	assert.NotEqual(t, waiter.ID, available[0].ID)

	updated := store.AssignEmployee(shift.ID, cook.ID)
	require.NotNil(t, updated)
	assert.Equal(t, model.StatusPartiallyAssigned, updated.Status)
	assert.Equal(t, 1, dispatcher.sendCalls)

	n := store.SendShiftInvitation(shift.ID, cook.ID)
	require.NotNil(t, n)

	// Every mutation flushed the snapshot; the final one carries it all.
	require.NotNil(t, persister.lastSaved)
	assert.Len(t, persister.lastSaved.Employees, 2)
	assert.Len(t, persister.lastSaved.Shifts, 1)
	assert.Len(t, persister.lastSaved.Templates, 1)
	assert.Len(t, persister.lastSaved.Notifications, 1)
}
