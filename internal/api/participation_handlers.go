package api

import (
	"errors"
	"net/http"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/models/dtos/requests"
	"football-club/matchday/internal/models/dtos/responses"
	"football-club/matchday/internal/services"

	"github.com/go-chi/chi/v5"
)

// Vote handles POST /api/v1/matches/{matchID}/vote for the calling member.
func (h *Handlers) Vote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		matchID := chi.URLParam(r, "matchID")

		var req requests.VoteRequest
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		p, err := h.deps.Services.Participations.Vote(r.Context(), services.VoteInput{
			MatchID:  matchID,
			MemberID: claims.MemberID(),
			Status:   req.Status,
			Comment:  req.Comment,
		})
		if err != nil {
			var de *services.DomainError
			if errors.As(err, &de) && h.deps.Metrics != nil {
				h.deps.Metrics.VotesRejectedTotal.WithLabelValues(de.Code).Inc()
			}
			logging.Debug("Vote rejected",
				"match_id", matchID,
				"member_id", claims.MemberID(),
				"error", err.Error(),
			)
			respondWithServiceError(w, r, err)
			return
		}

		if h.deps.Metrics != nil {
			h.deps.Metrics.VotesTotal.WithLabelValues(p.Status.String()).Inc()
		}
		resp := responses.FromParticipation(p)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// GetMyVote handles GET /api/v1/matches/{matchID}/me
func (h *Handlers) GetMyVote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		p, err := h.deps.Services.Participations.GetMyVote(r.Context(), chi.URLParam(r, "matchID"), claims.MemberID())
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		resp := responses.MyVoteResponse{}
		if p != nil {
			pr := responses.FromParticipation(p)
			resp.Voted = true
			resp.Participation = &pr
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListMyParticipations handles GET /api/v1/participations/me
func (h *Handlers) ListMyParticipations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		votes, err := h.deps.Services.Participations.ListMine(r.Context(), claims.MemberID())
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(votes, responses.FromParticipation))
	}
}

// ListMatchParticipations handles GET /api/v1/matches/{matchID}/participations
func (h *Handlers) ListMatchParticipations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := h.deps.Services.Matches.Get(r.Context(), chi.URLParam(r, "matchID"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, match.ClubID) {
			return
		}

		votes, err := h.deps.Services.Participations.ListByMatch(r.Context(), match.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(votes, responses.FromParticipation))
	}
}

// OverrideParticipation handles PUT /api/v1/participations/override. It
// skips every voting gate and is restricted to managers and admins.
func (h *Handlers) OverrideParticipation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req requests.OverrideRequest
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		match, err := h.deps.Services.Matches.Get(r.Context(), req.MatchID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, match.ClubID) {
			return
		}

		p, err := h.deps.Services.Participations.AdminOverride(r.Context(), services.OverrideInput{
			MatchID:    req.MatchID,
			MemberID:   req.MemberID,
			Status:     req.Status,
			Comment:    req.Comment,
			OperatorID: claims.MemberID(),
		})
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromParticipation(p)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
