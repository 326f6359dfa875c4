package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/suweldo/suweldo-backend-go/internal/handler/http/response"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified, unrevoked access token.
// Token verification itself is done by jwtauth.Verifier upstream; this
// checks the result, the token type claim, and the revocation list.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.Unauthorized(w, "Access token revoked")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
