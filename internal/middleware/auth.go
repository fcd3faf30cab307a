package middleware

import (
	"net/http"
	"strings"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/logging"
)

// AuthMiddleware requires a valid bearer token and stores its claims in the
// request context.
func AuthMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Unauthorized. Missing bearer token")
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logging.Debug("Rejected token", "error", err.Error(), "request_id", GetRequestID(r.Context()))
				writeError(w, http.StatusUnauthorized, "Unauthorized. Invalid token")
				return
			}

			setRequestMember(r.Context(), claims.MemberID())
			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
