package middleware

import (
	"net/http"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/constants"
)

func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.Role() != constants.RoleAdmin {
				writeError(w, http.StatusForbidden, "Forbidden. Need admin perms")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsOperatorMiddleware admits managers and admins.
func IsOperatorMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			if !auth.CanOperate(auth.GetUserClaims(r.Context())) {
				writeError(w, http.StatusForbidden, "Forbidden. Need manager perms")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
