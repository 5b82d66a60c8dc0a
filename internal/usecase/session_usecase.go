package usecase

import (
	"context"
	"time"

	"quickdash/internal/domain/entity"
)

// SessionStatus summarizes the session for UI collaborators
type SessionStatus struct {
	SessionID    string                `json:"session_id"`
	Reloads      int                   `json:"reloads"`
	LastReason   string                `json:"last_reason,omitempty"`
	LastReloadAt time.Time             `json:"last_reload_at,omitzero"`
	Location     entity.LocationRecord `json:"location"`
	Warehouse    string                `json:"warehouse_id,omitempty"`
	Guard        entity.GuardStatus    `json:"guard"`
}

// SessionUsecase owns the session lifetime. Reload is its only teardown.
type SessionUsecase interface {
	Reload(ctx context.Context, reason string) error
	Status(ctx context.Context) (*SessionStatus, error)
}
