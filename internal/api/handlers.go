package api

import (
	"net/http"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/constants"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// callerCanSeeClub lets admins through and keeps everyone else inside the
// club named in their token.
func callerCanSeeClub(w http.ResponseWriter, r *http.Request, clubID string) bool {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	if claims.Role() == constants.RoleAdmin || claims.ClubID() == clubID {
		return true
	}
	respondWithError(w, http.StatusForbidden, "Forbidden. Club mismatch")
	return false
}
