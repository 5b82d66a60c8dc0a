package impl

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"quickdash/config"
	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// authService implements the AuthUsecase interface.
type authService struct {
	gateway       service.AuthGateway
	tokens        repository.TokenRepository
	inspector     service.TokenInspector
	refreshSkew   time.Duration
	reloadLockTTL time.Duration
	privateScopes []string
	now           func() time.Time
	logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	gateway service.AuthGateway,
	tokens repository.TokenRepository,
	inspector service.TokenInspector,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		gateway:       gateway,
		tokens:        tokens,
		inspector:     inspector,
		refreshSkew:   cfg.Auth.RefreshSkew,
		reloadLockTTL: cfg.Auth.ReloadLockTTL,
		privateScopes: cfg.Auth.PrivateScopes,
		now:           time.Now,
		logger:        logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) SendOTP(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("phone is required")
	}

	challenge, err := srv.gateway.SendOTP(ctx, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send otp")
	}

	srv.log(ctx).Info("OTP sent", slog.Bool("debug_otp", challenge.DebugOTP != ""))

	return challenge, nil
}

func (srv *authService) VerifyOTP(ctx context.Context, phone, otp string) error {
	phone, otp = strings.TrimSpace(phone), strings.TrimSpace(otp)
	if phone == "" {
		return domainerrors.ErrInvalidInput.WithDetails("phone is required")
	}
	if !otpPattern.MatchString(otp) {
		return domainerrors.ErrInvalidOTP
	}

	tokens, err := srv.gateway.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return errors.Wrap(err, "failed to verify otp")
	}

	if err := srv.tokens.Save(ctx, *tokens); err != nil {
		return errors.Wrap(err, "failed to store tokens")
	}

	srv.log(ctx).Info("Customer signed in")

	return nil
}

func (srv *authService) Logout(ctx context.Context) error {
	if err := srv.tokens.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear tokens")
	}

	srv.log(ctx).Info("Customer signed out")

	return nil
}

func (srv *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	tokens, err := srv.tokens.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load tokens")
	}

	return tokens != nil, nil
}

// HandleAuthExpired sends private pages to login. Public pages reload once as a
// guest; the shared lock keeps concurrent sessions from reloading in a loop.
func (srv *authService) HandleAuthExpired(ctx context.Context, scope entity.PageScope) (entity.AuthFailureAction, error) {
	if slices.Contains(srv.privateScopes, string(scope)) {
		return entity.AuthActionReLogin, nil
	}

	acquired, err := srv.tokens.AcquireReloadLock(ctx, srv.now(), srv.reloadLockTTL)
	if err != nil {
		return entity.AuthActionNone, errors.Wrap(err, "failed to take reload lock")
	}
	if !acquired {
		return entity.AuthActionNone, nil
	}

	srv.log(ctx).Info("Session expired on public page, reloading as guest", slog.String("scope", string(scope)))

	return entity.AuthActionGuestReload, nil
}

func (srv *authService) EnsureFresh(ctx context.Context) error {
	tokens, err := srv.tokens.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load tokens")
	}
	if tokens == nil {
		return nil
	}

	expiresAt, ok, err := srv.inspector.ExpiresAt(tokens.AccessToken)
	if err != nil {
		// Opaque tokens are refreshed reactively on the first 401.
		srv.log(ctx).Debug("Access token has no readable expiry", slog.Any("error", err))

		return nil
	}
	if !ok || expiresAt.Sub(srv.now()) > srv.refreshSkew {
		return nil
	}

	srv.log(ctx).Info("Refreshing access token ahead of expiry", slog.Time("expires_at", expiresAt))

	return srv.gateway.Refresh(ctx)
}
