package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo/suweldo-backend-go/internal/domain/auth"
	"github.com/suweldo/suweldo-backend-go/internal/handler/http/middleware"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/jwt"
)

func newAuthFixture() (jwt.Service, AuthHandler) {
	jwtService := jwt.NewJWTService("test-secret", "15m", "24h")
	return jwtService, NewAuthHandler(jwtService, "suweldo-ops", "sekret")
}

func decodeTokenResponse(t *testing.T, rr *httptest.ResponseRecorder) auth.TokenResponse {
	t.Helper()
	var envelope struct {
		Success bool               `json:"success"`
		Data    auth.TokenResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func refreshCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == "refresh_token" {
			return c
		}
	}
	t.Fatal("no refresh_token cookie set")
	return nil
}

func TestAuthToken_IssuesAccessTokenAndRefreshCookie(t *testing.T) {
	t.Parallel()

	_, handler := newAuthFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token",
		strings.NewReader(`{"client_id":"suweldo-ops","client_secret":"sekret"}`))
	rr := httptest.NewRecorder()
	handler.Token(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeTokenResponse(t, rr)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	cookie := refreshCookie(t, rr)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthToken_RejectsWrongCredentials(t *testing.T) {
	t.Parallel()

	_, handler := newAuthFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token",
		strings.NewReader(`{"client_id":"suweldo-ops","client_secret":"wrong"}`))
	rr := httptest.NewRecorder()
	handler.Token(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthRefresh_RotatesAndRevokesOldToken(t *testing.T) {
	t.Parallel()

	_, handler := newAuthFixture()

	tokenReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token",
		strings.NewReader(`{"client_id":"suweldo-ops","client_secret":"sekret"}`))
	tokenRR := httptest.NewRecorder()
	handler.Token(tokenRR, tokenReq)
	require.Equal(t, http.StatusOK, tokenRR.Code)
	oldCookie := refreshCookie(t, tokenRR)

	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	refreshReq.AddCookie(oldCookie)
	refreshRR := httptest.NewRecorder()
	handler.RefreshToken(refreshRR, refreshReq)

	require.Equal(t, http.StatusOK, refreshRR.Code)
	resp := decodeTokenResponse(t, refreshRR)
	assert.NotEmpty(t, resp.AccessToken)
	newCookie := refreshCookie(t, refreshRR)
	assert.NotEqual(t, oldCookie.Value, newCookie.Value, "refresh must rotate the cookie")

	// Replaying the consumed refresh token is rejected.
	replayReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	replayReq.AddCookie(oldCookie)
	replayRR := httptest.NewRecorder()
	handler.RefreshToken(replayRR, replayReq)
	assert.Equal(t, http.StatusUnauthorized, replayRR.Code)
}

func TestAuthRefresh_RejectsMissingCookie(t *testing.T) {
	t.Parallel()

	_, handler := newAuthFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	rr := httptest.NewRecorder()
	handler.RefreshToken(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthRefresh_RejectsAccessTokenInCookie(t *testing.T) {
	t.Parallel()

	jwtService, handler := newAuthFixture()
	accessToken, _, err := jwtService.GenerateAccessToken("suweldo-ops", "service")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: accessToken})
	rr := httptest.NewRecorder()
	handler.RefreshToken(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthRequired_AcceptsIssuedTokenAndRejectsRevoked(t *testing.T) {
	t.Parallel()

	jwtService, _ := newAuthFixture()
	accessToken, _, err := jwtService.GenerateAccessToken("suweldo-ops", "service")
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(middleware.AuthRequired(jwtService))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	jwtService.RevokeToken(accessToken)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
