package auth

import "errors"

var (
	ErrInvalidClientCredentials = errors.New("invalid client credentials")
	ErrRefreshTokenMissing      = errors.New("refresh token cookie missing or empty")
	ErrRefreshTokenInvalid      = errors.New("refresh token is invalid or expired")
	ErrRefreshTokenRevoked      = errors.New("refresh token has been revoked")
)
