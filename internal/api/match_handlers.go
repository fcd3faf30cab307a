package api

import (
	"net/http"

	"football-club/matchday/internal/models/dtos/responses"
	"football-club/matchday/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateTemplate handles POST /api/v1/templates
func (h *Handlers) CreateTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.CreateTemplateInput
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if !callerCanSeeClub(w, r, req.ClubID) {
			return
		}

		tmpl, err := h.deps.Services.Matches.CreateTemplate(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromTemplate(tmpl)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListTemplates handles GET /api/v1/clubs/{clubID}/templates
func (h *Handlers) ListTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := chi.URLParam(r, "clubID")
		if !callerCanSeeClub(w, r, clubID) {
			return
		}

		templates, err := h.deps.Services.Matches.ListTemplates(r.Context(), clubID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(templates, responses.FromTemplate))
	}
}

// GenerateMatch handles POST /api/v1/matches/generate. The match is placed
// on match_date at the template's time of day.
func (h *Handlers) GenerateMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.FromTemplateInput
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		tmpl, err := h.deps.Services.Matches.GetTemplate(r.Context(), req.TemplateID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, tmpl.ClubID) {
			return
		}

		match, err := h.deps.Services.Matches.FromTemplate(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromMatch(match)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// CreateMatch handles POST /api/v1/matches
func (h *Handlers) CreateMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.ManualMatchInput
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if !callerCanSeeClub(w, r, req.ClubID) {
			return
		}

		match, err := h.deps.Services.Matches.Manual(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromMatch(match)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// UpdateMatch handles PATCH /api/v1/matches/{matchID}
func (h *Handlers) UpdateMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		var req services.UpdateMatchInput
		if err := decodeJSON(r, &req, false); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		current, err := h.deps.Services.Matches.Get(r.Context(), matchID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, current.ClubID) {
			return
		}

		match, err := h.deps.Services.Matches.Update(r.Context(), matchID, req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromMatch(match)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// GetMatch handles GET /api/v1/matches/{matchID}
func (h *Handlers) GetMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := h.deps.Services.Matches.Get(r.Context(), chi.URLParam(r, "matchID"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, match.ClubID) {
			return
		}
		resp := responses.FromMatch(match)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListUpcomingMatches handles GET /api/v1/clubs/{clubID}/matches
func (h *Handlers) ListUpcomingMatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubID := chi.URLParam(r, "clubID")
		if !callerCanSeeClub(w, r, clubID) {
			return
		}

		matches, err := h.deps.Services.Matches.ListUpcoming(r.Context(), clubID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(matches, responses.FromMatch))
	}
}
