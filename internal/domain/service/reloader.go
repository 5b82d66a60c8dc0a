package service

import "context"

// Reloader tears down the session's in-memory view and rebuilds it from persisted state.
type Reloader interface {
	Reload(ctx context.Context, reason string) error
}
