package api

import (
	"net/http"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/models/dtos/requests"
	"football-club/matchday/internal/models/dtos/responses"

	"github.com/go-chi/chi/v5"
)

// PreviewNotification handles GET /api/v1/notifications/preview?match_id=&type=
// and renders the text without storing it.
func (h *Handlers) PreviewNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("match_id")
		nType := constants.NotificationType(r.URL.Query().Get("type"))
		if nType == "" {
			nType = constants.NotificationManual
		}

		match, err := h.deps.Services.Matches.Get(r.Context(), matchID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, match.ClubID) {
			return
		}

		content, err := h.deps.Services.Notifications.Preview(r.Context(), matchID, nType)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.PreviewResponse{
			MatchID: matchID,
			Type:    nType,
			Content: content,
		})
	}
}

// GenerateNotification handles POST /api/v1/notifications/generate
func (h *Handlers) GenerateNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.GenerateNotificationRequest
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

		n, created, err := h.deps.Services.Notifications.Generate(r.Context(), req.MatchID, req.Type)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if created && h.deps.Metrics != nil {
			h.deps.Metrics.NotificationsCreated.WithLabelValues(n.Type.String()).Inc()
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		respondWithSuccess(w, status, &responses.GenerateNotificationResponse{
			Created:      created,
			Notification: responses.FromNotification(n),
		})
	}
}

// SendNotification handles POST /api/v1/notifications/{notificationID}/send.
// Without an announcer_id the caller receives the message.
func (h *Handlers) SendNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		notificationID := chi.URLParam(r, "notificationID")

		var req requests.SendNotificationRequest
		if err := decodeJSON(r, &req, true); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if req.AnnouncerID == "" {
			req.AnnouncerID = claims.MemberID()
		}

		if !h.canSeeNotification(w, r, notificationID) {
			return
		}

		n, err := h.deps.Services.Notifications.SendToAnnouncer(r.Context(), notificationID, req.AnnouncerID)
		if h.deps.Metrics != nil {
			outcome := "sent"
			if err != nil {
				outcome = "failed"
			}
			h.deps.Metrics.NotificationsDelivered.WithLabelValues(outcome).Inc()
		}
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromNotification(n)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// PublishNotification handles POST /api/v1/notifications/{notificationID}/publish
func (h *Handlers) PublishNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notificationID := chi.URLParam(r, "notificationID")
		if !h.canSeeNotification(w, r, notificationID) {
			return
		}

		n, err := h.deps.Services.Notifications.Publish(r.Context(), notificationID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp := responses.FromNotification(n)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListMatchNotifications handles GET /api/v1/matches/{matchID}/notifications
func (h *Handlers) ListMatchNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := h.deps.Services.Matches.Get(r.Context(), chi.URLParam(r, "matchID"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, match.ClubID) {
			return
		}

		list, err := h.deps.Services.Notifications.ListByMatch(r.Context(), match.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.MapList(list, responses.FromNotification))
	}
}

// MatchStats handles GET /api/v1/matches/{matchID}/stats
func (h *Handlers) MatchStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := h.deps.Services.Matches.Get(r.Context(), chi.URLParam(r, "matchID"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if !callerCanSeeClub(w, r, match.ClubID) {
			return
		}

		stats, err := h.deps.Services.Notifications.Stats(r.Context(), match.ID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &stats)
	}
}

func (h *Handlers) canSeeNotification(w http.ResponseWriter, r *http.Request, notificationID string) bool {
	n, err := h.deps.Services.Notifications.Get(r.Context(), notificationID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return false
	}
	match, err := h.deps.Services.Matches.Get(r.Context(), n.MatchID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return false
	}
	return callerCanSeeClub(w, r, match.ClubID)
}
