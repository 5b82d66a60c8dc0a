package service

import "time"

// TokenInspector reads claims from bearer tokens without verifying them;
// verification is the backend's job.
type TokenInspector interface {
	// ExpiresAt returns the token expiry, or false when the token carries none.
	ExpiresAt(token string) (time.Time, bool, error)
}
