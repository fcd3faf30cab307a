package requests

import "football-club/matchday/internal/constants"

// GenerateNotificationRequest defaults to a MANUAL notification when Type is empty.
type GenerateNotificationRequest struct {
	MatchID string                     `json:"match_id"`
	Type    constants.NotificationType `json:"type,omitempty"`
}

// SendNotificationRequest names the announcer; the caller is used when empty.
type SendNotificationRequest struct {
	AnnouncerID string `json:"announcer_id,omitempty"`
}
