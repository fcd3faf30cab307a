package middleware

import (
	"net/http"

	"football-club/matchday/internal/auth"
)

func IsMemberMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil || claims.MemberID() == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized. Member token required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
