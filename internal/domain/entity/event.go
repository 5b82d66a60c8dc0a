package entity

import "time"

// LocationChangedEvent is the sole in-process notification between components.
type LocationChangedEvent struct {
	EventID    string         `json:"event_id"`
	SessionID  string         `json:"session_id"`
	Source     LocationSource `json:"source"`
	Record     LocationRecord `json:"record"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// StorageChange describes a mutation of a persisted key.
// Foreign is true when another session wrote it.
type StorageChange struct {
	Key     string
	Foreign bool
	Writer  string
}
