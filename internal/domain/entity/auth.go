package entity

// TokenPair holds the bearer credentials of the signed-in customer.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh,omitempty"`
}

// OTPChallenge is the result of requesting a one-time password.
type OTPChallenge struct {
	Phone    string `json:"phone"`
	DebugOTP string `json:"debug_otp,omitempty"`
}

// PageScope tells the auth policy whether the current view requires a signed-in user.
type PageScope string

// AuthFailureAction is what the session should do after a failed token refresh.
type AuthFailureAction string

const (
	AuthActionReLogin     AuthFailureAction = "RE_LOGIN"
	AuthActionGuestReload AuthFailureAction = "GUEST_RELOAD"
	AuthActionNone        AuthFailureAction = "NONE"
)
