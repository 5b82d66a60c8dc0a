package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
)

// AuthUsecase defines the customer sign-in flow and the session expiry policy.
type AuthUsecase interface {
	SendOTP(ctx context.Context, phone string) (*entity.OTPChallenge, error)
	VerifyOTP(ctx context.Context, phone, otp string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)

	// HandleAuthExpired decides what to do after a failed token refresh on a page of the given scope.
	HandleAuthExpired(ctx context.Context, scope entity.PageScope) (entity.AuthFailureAction, error)

	// EnsureFresh refreshes the access token ahead of its expiry.
	EnsureFresh(ctx context.Context) error
}
