package backend

import (
	"context"
	"net/http"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"
	"quickdash/internal/util"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway is the constructor for the auth gateway.
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) SendOTP(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodPost, "/notifications/send-otp/", map[string]string{"phone": phone}, &raw); err != nil {
		return nil, err
	}

	return &entity.OTPChallenge{
		Phone:    phone,
		DebugOTP: util.FirstString(raw, "debug_otp"),
	}, nil
}

func (g *authGateway) VerifyOTP(ctx context.Context, phone, otp string) (*entity.TokenPair, error) {
	body := map[string]string{
		"login_type": "local",
		"phone":      phone,
		"otp":        otp,
	}

	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodPost, "/auth/register/customer/", body, &raw); err != nil {
		return nil, err
	}

	return toTokenPair(raw)
}

func (g *authGateway) Refresh(ctx context.Context) error {
	current, err := g.client.currentAccessToken(ctx)
	if err != nil {
		return err
	}

	_, err = g.client.refreshAccessToken(ctx, current)

	return err
}
