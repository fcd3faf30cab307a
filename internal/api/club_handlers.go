package api

import (
	"net/http"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/models/dtos/requests"
	"football-club/matchday/internal/models/dtos/responses"
	"football-club/matchday/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateClub handles POST /api/v1/clubs (admin)
func (h *Handlers) CreateClub() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateClubRequest
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		club, err := h.deps.Services.Clubs.CreateClub(r.Context(), req.Name, req.EmblemURL)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromClub(club)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// CreateMember handles POST /api/v1/clubs/{clubID}/members
func (h *Handlers) CreateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := chi.URLParam(r, "clubID")
		if !callerCanSeeClub(w, r, clubID) {
			return
		}

		var req requests.CreateMemberRequest
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		member, err := h.deps.Services.Clubs.CreateMember(r.Context(), services.CreateMemberInput{
			ClubID:     clubID,
			ExternalID: req.ExternalID,
			Name:       req.Name,
			Role:       req.Role,
			ChatToken:  req.ChatToken,
		})
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromMember(member)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListMembers handles GET /api/v1/clubs/{clubID}/members
func (h *Handlers) ListMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := chi.URLParam(r, "clubID")
		if !callerCanSeeClub(w, r, clubID) {
			return
		}

		members, err := h.deps.Services.Clubs.ListMembers(r.Context(), clubID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(members, responses.FromMember))
	}
}

// SetChatToken handles PUT /api/v1/members/{memberID}/chat-token. Members may
// set their own token; operators may set anyone's in their club.
func (h *Handlers) SetChatToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := chi.URLParam(r, "memberID")
		claims := auth.GetUserClaims(r.Context())

		member, err := h.deps.Services.Clubs.GetMember(r.Context(), memberID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if claims.MemberID() != memberID {
			if !auth.CanOperate(claims) {
				respondWithError(w, http.StatusForbidden, "Forbidden. Need manager perms")
				return
			}
			if !callerCanSeeClub(w, r, member.ClubID) {
				return
			}
		}

		var req requests.SetChatTokenRequest
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if req.ChatToken == "" {
			respondWithError(w, http.StatusBadRequest, "chat_token is required")
			return
		}

		if err := h.deps.Services.Clubs.SetChatToken(r.Context(), memberID, req.ChatToken); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		member.ChatToken = req.ChatToken
		resp := responses.FromMember(member)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
