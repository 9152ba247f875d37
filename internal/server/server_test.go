package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

func newTestServer() *Server {
	store := schedule.NewStore(schedule.Options{
		DefaultRoles: []string{"menage", "cuisine", "service"},
	})
	srv := NewServer(store, zap.NewNop())
	srv.RegisterRoutes()
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestEmployeeEndpoints(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/employees", model.Employee{
		Name: "Marie", Email: "marie@example.com", Phone: "0612345678", Role: "cuisine",
		Availability: []model.Availability{{DayOfWeek: 3, StartTime: "08:00", EndTime: "16:00"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Employee](t, rec)
	assert.NotEmpty(t, created.ID)

	rec = doJSON(t, srv, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Employee](t, rec), 1)

	rec = doJSON(t, srv, http.MethodPatch, "/api/employees/"+created.ID, map[string]any{"role": "service"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "service", decode[model.Employee](t, rec).Role)

	rec = doJSON(t, srv, http.MethodDelete, "/api/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddEmployeeValidation(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/employees", model.Employee{
		Name: "Marie", Email: "not-an-email", Phone: "0612345678", Role: "cuisine",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/employees", model.Employee{
		Name: "Marie", Email: "marie@example.com", Phone: "0612345678", Role: "cuisine",
		Availability: []model.Availability{{DayOfWeek: 3, StartTime: "16:00", EndTime: "08:00"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftAssignmentFlow(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/employees", model.Employee{
		Name: "Marie", Email: "marie@example.com", Phone: "0612345678", Role: "cuisine",
		Availability: []model.Availability{{DayOfWeek: 3, StartTime: "08:00", EndTime: "16:00"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	emp := decode[model.Employee](t, rec)

	// 2026-01-07 is a Wednesday.
	rec = doJSON(t, srv, http.MethodPost, "/api/shifts", model.Shift{
		Title:         "Wednesday lunch",
		Start:         time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC),
		RequiredStaff: 2,
		Role:          "cuisine",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	shift := decode[model.Shift](t, rec)
	assert.Equal(t, model.StatusUnassigned, shift.Status)

	rec = doJSON(t, srv, http.MethodGet, "/api/shifts/"+shift.ID+"/available-employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	available := decode[[]model.Employee](t, rec)
	require.Len(t, available, 1)
	assert.Equal(t, emp.ID, available[0].ID)

	rec = doJSON(t, srv, http.MethodPost, "/api/shifts/"+shift.ID+"/assignments", map[string]string{"employeeId": emp.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	assigned := decode[model.Shift](t, rec)
	assert.Equal(t, model.StatusPartiallyAssigned, assigned.Status)
	assert.Equal(t, []string{emp.ID}, assigned.EmployeeIDs)

	rec = doJSON(t, srv, http.MethodPost, "/api/shifts/"+shift.ID+"/invitations", map[string]string{"employeeId": emp.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	notification := decode[model.Notification](t, rec)
	assert.Equal(t, model.NotificationShiftInvitation, notification.Type)

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/shifts/%s/assignments/%s", shift.ID, emp.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusUnassigned, decode[model.Shift](t, rec).Status)
}

func TestShiftEndpointsNotFound(t *testing.T) {
	srv := newTestServer()

	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, http.MethodPatch, "/api/shifts/ghost", map[string]any{"title": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, http.MethodDelete, "/api/shifts/ghost", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, http.MethodGet, "/api/shifts/ghost/available-employees", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, http.MethodPost, "/api/shifts/ghost/assignments", map[string]string{"employeeId": "e1"}).Code)
}

func TestTemplateEndpoints(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/templates", model.Template{
		Name: "Standard week",
		Shifts: []model.TemplateShift{
			{Title: "Wednesday lunch", DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00", RequiredStaff: 2, Role: "service"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tpl := decode[model.Template](t, rec)
	require.Len(t, tpl.Shifts, 1)

	// 2026-01-05 is a Monday.
	rec = doJSON(t, srv, http.MethodPost, "/api/templates/"+tpl.ID+"/apply", map[string]any{"startDate": "2026-01-05", "weeks": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[[]model.Shift](t, rec)
	require.Len(t, created, 2)
	assert.Equal(t, time.Wednesday, created[0].Start.Weekday())
	assert.Equal(t, model.StatusUnassigned, created[0].Status)

	rec = doJSON(t, srv, http.MethodPost, "/api/templates/ghost/apply", map[string]any{"startDate": "2026-01-05"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/templates/%s/shifts/%s", tpl.ID, tpl.Shifts[0].ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestApplyTemplateBadStartDate(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/templates/ghost/apply", map[string]any{"startDate": "05/01/2026"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoleEndpoints(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/roles", map[string]string{"name": "plonge"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, decode[[]string](t, rec), "plonge")

	rec = doJSON(t, srv, http.MethodDelete, "/api/roles/plonge", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decode[[]string](t, rec), "plonge")

	rec = doJSON(t, srv, http.MethodGet, "/api/roles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"menage", "cuisine", "service"}, decode[[]string](t, rec))
}

func TestNotificationEndpoints(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/notifications", map[string]string{
		"type": "shift_reminder", "title": "Reminder", "message": "Shift tomorrow",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Notification](t, rec)
	assert.False(t, created.Read)

	rec = doJSON(t, srv, http.MethodPost, "/api/notifications", map[string]string{
		"type": "party_invitation", "title": "t", "message": "m",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/notifications/"+created.ID+"/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[model.Notification](t, rec).Read)

	rec = doJSON(t, srv, http.MethodPost, "/api/notifications/ghost/read", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
