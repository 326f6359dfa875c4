package auth

import "github.com/suweldo/suweldo-backend-go/internal/pkg/validator"

// TokenRequest exchanges configured client credentials for a bearer token.
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func (r TokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ClientSecret) {
		errs = append(errs, validator.ValidationError{Field: "client_secret", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse carries a freshly minted access token. The refresh token
// travels in an HttpOnly cookie, never in the body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}
