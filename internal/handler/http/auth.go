package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/auth"
	"github.com/suweldo/suweldo-backend-go/internal/handler/http/response"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/jwt"
)

// clientRole is the role claim stamped on every issued token. The API has
// a single service-client audience; finer roles would land here.
const clientRole = "service"

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService   jwt.Service
	clientID     string
	clientSecret string
}

func NewAuthHandler(jwtService jwt.Service, clientID, clientSecret string) AuthHandler {
	return &authHandlerImpl{
		jwtService:   jwtService,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Token exchanges configured client credentials for an access token plus a
// refresh-token cookie.
func (h *authHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	idOK := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.clientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.clientSecret)) == 1
	if !idOK || !secretOK {
		response.HandleError(w, auth.ErrInvalidClientCredentials)
		return
	}

	h.issueTokens(w, req.ClientID)
}

// RefreshToken rotates the refresh cookie: the presented token is revoked
// and a fresh access/refresh pair is issued.
func (h *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrRefreshTokenMissing)
		return
	}
	refreshToken := cookie.Value

	if h.jwtService.IsTokenRevoked(refreshToken) {
		response.HandleError(w, auth.ErrRefreshTokenRevoked)
		return
	}

	token, err := jwtauth.VerifyToken(h.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		response.HandleError(w, auth.ErrRefreshTokenInvalid)
		return
	}
	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		response.HandleError(w, auth.ErrRefreshTokenInvalid)
		return
	}
	clientID, _ := token.Get("client_id")
	clientIDStr, ok := clientID.(string)
	if !ok || clientIDStr == "" {
		response.HandleError(w, auth.ErrRefreshTokenInvalid)
		return
	}

	h.jwtService.RevokeToken(refreshToken)
	h.issueTokens(w, clientIDStr)
}

// Logout revokes the refresh token and clears its cookie.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		h.jwtService.RevokeToken(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *authHandlerImpl) issueTokens(w http.ResponseWriter, clientID string) {
	accessToken, accessExpiresAt, err := h.jwtService.GenerateAccessToken(clientID, clientRole)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	refreshToken, refreshExpiresAt, err := h.jwtService.GenerateRefreshToken(clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt))
	response.Success(w, auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   accessExpiresAt,
	})
}
