package models

import "time"

// AuditLog is an immutable record of an admin action.
type AuditLog struct {
	ID       string         `json:"id"`
	ActorID  string         `json:"actor_id"`
	Actor    string         `json:"actor,omitempty"`
	Action   string         `json:"action"`
	Entity   string         `json:"entity"`
	EntityID string         `json:"entity_id,omitempty"`
	At       time.Time      `json:"created_at"`
	Details  map[string]any `json:"details,omitempty"`
}
