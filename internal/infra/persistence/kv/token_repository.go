package kv

import (
	"context"
	"strconv"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"

	"github.com/pkg/errors"
)

// tokenRepository implements the domain.TokenRepository interface.
type tokenRepository struct {
	store repository.StateStore
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(store repository.StateStore) repository.TokenRepository {
	return &tokenRepository{store: store}
}

// Load returns nil when no access token is stored.
func (repo *tokenRepository) Load(ctx context.Context) (*entity.TokenPair, error) {
	values, err := repo.store.GetMany(ctx, tokenKeys...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tokens")
	}

	access := values[repository.KeyAccessToken]
	if access == "" {
		return nil, nil
	}

	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: values[repository.KeyRefreshToken],
	}, nil
}

// Save writes the access token and, when present, the refresh token.
// A refresh response without a rotated refresh token keeps the stored one.
func (repo *tokenRepository) Save(ctx context.Context, tokens entity.TokenPair) error {
	if tokens.AccessToken == "" {
		return errors.New("access token is required")
	}

	values := map[string]string{repository.KeyAccessToken: tokens.AccessToken}
	if tokens.RefreshToken != "" {
		values[repository.KeyRefreshToken] = tokens.RefreshToken
	}

	return errors.Wrap(repo.store.Set(ctx, values), "failed to save tokens")
}

func (repo *tokenRepository) Clear(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, tokenKeys...), "failed to clear tokens")
}

func (repo *tokenRepository) AcquireReloadLock(ctx context.Context, now time.Time, ttl time.Duration) (bool, error) {
	raw, ok, err := repo.store.Get(ctx, repository.KeyAuthReloadLock)
	if err != nil {
		return false, errors.Wrap(err, "failed to read reload lock")
	}

	if ok {
		if heldAt, err := strconv.ParseInt(raw, 10, 64); err == nil {
			if now.Sub(time.UnixMilli(heldAt)) < ttl {
				return false, nil
			}
		}
	}

	if err := repo.store.Set(ctx, map[string]string{
		repository.KeyAuthReloadLock: strconv.FormatInt(now.UnixMilli(), 10),
	}); err != nil {
		return false, errors.Wrap(err, "failed to take reload lock")
	}

	return true, nil
}
