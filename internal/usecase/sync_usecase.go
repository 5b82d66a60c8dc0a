package usecase

import "context"

// TabSyncUsecase reloads the session when another session rewrites the location keys.
type TabSyncUsecase interface {
	// Watch blocks until ctx is done.
	Watch(ctx context.Context) error
}
