package responses

import (
	"time"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"
)

type NotificationResponse struct {
	ID        string                       `json:"id"`
	MatchID   string                       `json:"match_id"`
	Type      constants.NotificationType   `json:"type"`
	Status    constants.NotificationStatus `json:"status"`
	Content   string                       `json:"content"`
	SentAt    *time.Time                   `json:"sent_at,omitempty"`
	CreatedAt time.Time                    `json:"created_at"`
}

func FromNotification(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		MatchID:   n.MatchID,
		Type:      n.Type,
		Status:    n.Status,
		Content:   n.Content,
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
}

// GenerateNotificationResponse tells the caller whether the notification was
// created by this request or already existed.
type GenerateNotificationResponse struct {
	Created      bool                 `json:"created"`
	Notification NotificationResponse `json:"notification"`
}

type PreviewResponse struct {
	MatchID string                     `json:"match_id"`
	Type    constants.NotificationType `json:"type"`
	Content string                     `json:"content"`
}

type SchedulerPassResponse struct {
	Scanned     int       `json:"scanned"`
	Created     int       `json:"created"`
	Failed      int       `json:"failed"`
	Skipped     bool      `json:"skipped"`
	TriggeredBy string    `json:"triggered_by"`
	TriggeredAt time.Time `json:"triggered_at"`
	DurationMs  int64     `json:"duration_ms"`
}
