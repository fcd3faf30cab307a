package responses

import (
	"time"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"
)

type ClubResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EmblemURL *string   `json:"emblem_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClub(c *models.Club) ClubResponse {
	return ClubResponse{ID: c.ID, Name: c.Name, EmblemURL: c.EmblemURL, CreatedAt: c.CreatedAt}
}

// MemberResponse never exposes the chat token, only whether one is stored.
type MemberResponse struct {
	ID           string               `json:"id"`
	ClubID       string               `json:"club_id"`
	ExternalID   string               `json:"external_id"`
	Name         string               `json:"name"`
	Role         constants.MemberRole `json:"role"`
	HasChatToken bool                 `json:"has_chat_token"`
}

func FromMember(m *models.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		ClubID:       m.ClubID,
		ExternalID:   m.ExternalID,
		Name:         m.Name,
		Role:         m.Role,
		HasChatToken: m.ChatToken != "",
	}
}

type SeasonResponse struct {
	ID       string    `json:"id"`
	ClubID   string    `json:"club_id"`
	Name     string    `json:"name"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	IsActive bool      `json:"is_active"`
}

func FromSeason(s *models.Season) SeasonResponse {
	return SeasonResponse{
		ID:       s.ID,
		ClubID:   s.ClubID,
		Name:     s.Name,
		StartAt:  s.StartAt,
		EndAt:    s.EndAt,
		IsActive: s.IsActive,
	}
}

type MembershipResponse struct {
	ID        string                     `json:"id"`
	MemberID  string                     `json:"member_id"`
	ClubID    string                     `json:"club_id"`
	SeasonID  string                     `json:"season_id"`
	Type      constants.MembershipType   `json:"type"`
	Status    constants.MembershipStatus `json:"status"`
	JoinedAt  time.Time                  `json:"joined_at"`
	ExpiresAt time.Time                  `json:"expires_at"`
}

func FromMembership(m *models.Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID,
		MemberID:  m.MemberID,
		ClubID:    m.ClubID,
		SeasonID:  m.SeasonID,
		Type:      m.Type,
		Status:    m.Status,
		JoinedAt:  m.JoinedAt,
		ExpiresAt: m.ExpiresAt,
	}
}
