package api

import (
	"net/http"

	"football-club/matchday/internal/models/dtos/requests"
	"football-club/matchday/internal/models/dtos/responses"
	"football-club/matchday/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateSeason handles POST /api/v1/seasons
func (h *Handlers) CreateSeason() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.CreateSeasonInput
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if !callerCanSeeClub(w, r, req.ClubID) {
			return
		}

		season, err := h.deps.Services.Seasons.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromSeason(season)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListSeasons handles GET /api/v1/clubs/{clubID}/seasons
func (h *Handlers) ListSeasons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := chi.URLParam(r, "clubID")
		if !callerCanSeeClub(w, r, clubID) {
			return
		}

		seasons, err := h.deps.Services.Seasons.ListByClub(r.Context(), clubID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(seasons, responses.FromSeason))
	}
}

// CreateMembership handles POST /api/v1/memberships
func (h *Handlers) CreateMembership() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.CreateMembershipInput
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		season, err := h.deps.Services.Seasons.Get(r.Context(), req.SeasonID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, season.ClubID) {
			return
		}

		membership, err := h.deps.Services.Memberships.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromMembership(membership)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// UpdateMembership handles PATCH /api/v1/memberships/{membershipID}
func (h *Handlers) UpdateMembership() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		membershipID := chi.URLParam(r, "membershipID")

		var req requests.UpdateMembershipRequest
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		current, err := h.deps.Services.Memberships.Get(r.Context(), membershipID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, current.ClubID) {
			return
		}

		membership, err := h.deps.Services.Memberships.UpdateStatus(r.Context(), membershipID, req.Status)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromMembership(membership)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListMemberships handles GET /api/v1/seasons/{seasonID}/memberships
func (h *Handlers) ListMemberships() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := h.deps.Services.Seasons.Get(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, season.ClubID) {
			return
		}

		memberships, err := h.deps.Services.Memberships.ListBySeason(r.Context(), season.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(memberships, responses.FromMembership))
	}
}
