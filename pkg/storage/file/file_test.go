package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/storage"
)

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "schedule.json"))

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := New(path)
	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	store := New(path)

	// Sub-second component must survive the round trip.
	start := time.Date(2026, 1, 7, 9, 0, 0, 123*int(time.Millisecond), time.UTC)
	snap := &storage.Snapshot{
		Employees: []model.Employee{{
			ID: "e1", Name: "Marie", Email: "marie@example.com", Role: "cuisine",
			Availability: []model.Availability{{DayOfWeek: 3, StartTime: "08:00", EndTime: "16:00"}},
		}},
		Shifts: []model.Shift{{
			ID: "s1", Title: "Wednesday lunch", Start: start, End: start.Add(3 * time.Hour),
			EmployeeIDs: []string{"e1"}, Status: model.StatusFullyAssigned, RequiredStaff: 1, Role: "cuisine",
		}},
		Roles: []string{"menage", "cuisine", "service"},
		Notifications: []model.Notification{{
			ID: "n1", Type: model.NotificationShiftInvitation, Title: "t", Message: "m",
			CreatedAt: start, ShiftID: "s1", EmployeeID: "e1",
		}},
	}

	require.NoError(t, store.Save(context.Background(), snap))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap, loaded)
	assert.Equal(t, 123, loaded.Shifts[0].Start.Nanosecond()/int(time.Millisecond))
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "schedule.json")
	store := New(path)

	require.NoError(t, store.Save(context.Background(), &storage.Snapshot{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.json")
	store := New(path)

	require.NoError(t, store.Save(context.Background(), &storage.Snapshot{Roles: []string{"cuisine"}}))
	require.NoError(t, store.Save(context.Background(), &storage.Snapshot{Roles: []string{"service"}}))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"service"}, loaded.Roles)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
