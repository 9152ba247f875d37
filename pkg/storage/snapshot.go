// Package storage defines the persisted document shape shared by every
// snapshot backend. Persistence is a load/save collaborator: the whole store
// state round-trips as one JSON-serializable document, with shift timestamps
// as ISO-8601 strings.
package storage

import "github.com/jakechorley/schedule-master/pkg/core/model"

// Snapshot is the single persisted document.
type Snapshot struct {
	Employees     []model.Employee     `json:"employees"`
	Shifts        []model.Shift        `json:"shifts"`
	Templates     []model.Template     `json:"templates"`
	Roles         []string             `json:"roles"`
	Notifications []model.Notification `json:"notifications"`
}
