package repository

import (
	"context"
	"time"

	"quickdash/internal/domain/entity"
)

// TokenRepository persists the customer's bearer credentials.
type TokenRepository interface {
	Load(ctx context.Context) (*entity.TokenPair, error)
	Save(ctx context.Context, tokens entity.TokenPair) error
	Clear(ctx context.Context) error

	// AcquireReloadLock takes the one-time guest reload lock.
	// It returns false if a lock younger than ttl is already held.
	AcquireReloadLock(ctx context.Context, now time.Time, ttl time.Duration) (bool, error)
}
