package responses

import (
	"time"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"
)

type TemplateResponse struct {
	ID               string  `json:"id"`
	ClubID           string  `json:"club_id"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	Location         string  `json:"location"`
	DayOfWeek        *int    `json:"day_of_week,omitempty"`
	StartTimeOfDay   string  `json:"start_time_of_day"`
	DurationMinutes  int     `json:"duration_minutes"`
	MinParticipants  int     `json:"min_participants"`
	MaxParticipants  int     `json:"max_participants"`
	PollingLeadHours int     `json:"polling_lead_hours"`
	SoftLeadHours    *int    `json:"soft_lead_hours,omitempty"`
	HardLeadHours    int     `json:"hard_lead_hours"`
}

func FromTemplate(t *models.MatchTemplate) TemplateResponse {
	return TemplateResponse{
		ID:               t.ID,
		ClubID:           t.ClubID,
		Name:             t.Name,
		Description:      t.Description,
		Location:         t.Location,
		DayOfWeek:        t.DayOfWeek,
		StartTimeOfDay:   t.StartTimeOfDay,
		DurationMinutes:  t.DurationMinutes,
		MinParticipants:  t.MinParticipants,
		MaxParticipants:  t.MaxParticipants,
		PollingLeadHours: t.PollingLeadHours,
		SoftLeadHours:    t.SoftLeadHours,
		HardLeadHours:    t.HardLeadHours,
	}
}

type MatchResponse struct {
	ID              string                `json:"id"`
	ClubID          string                `json:"club_id"`
	SeasonID        string                `json:"season_id"`
	TemplateID      *string               `json:"template_id,omitempty"`
	Name            string                `json:"name"`
	Description     *string               `json:"description,omitempty"`
	Location        string                `json:"location"`
	StartTime       time.Time             `json:"start_time"`
	EndTime         time.Time             `json:"end_time"`
	PollingStartAt  time.Time             `json:"polling_start_at"`
	SoftDeadlineAt  *time.Time            `json:"soft_deadline_at,omitempty"`
	HardDeadlineAt  time.Time             `json:"hard_deadline_at"`
	MinParticipants int                   `json:"min_participants"`
	MaxParticipants int                   `json:"max_participants"`
	Status          constants.MatchStatus `json:"status"`
}

func FromMatch(m *models.Match) MatchResponse {
	return MatchResponse{
		ID:              m.ID,
		ClubID:          m.ClubID,
		SeasonID:        m.SeasonID,
		TemplateID:      m.TemplateID,
		Name:            m.Name,
		Description:     m.Description,
		Location:        m.Location,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		PollingStartAt:  m.PollingStartAt,
		SoftDeadlineAt:  m.SoftDeadlineAt,
		HardDeadlineAt:  m.HardDeadlineAt,
		MinParticipants: m.MinParticipants,
		MaxParticipants: m.MaxParticipants,
		Status:          m.Status,
	}
}

type ParticipationResponse struct {
	ID        string                        `json:"id"`
	MatchID   string                        `json:"match_id"`
	MemberID  string                        `json:"member_id"`
	Status    constants.ParticipationStatus `json:"status"`
	Comment   *string                       `json:"comment,omitempty"`
	UpdatedAt time.Time                     `json:"updated_at"`
}

func FromParticipation(p *models.Participation) ParticipationResponse {
	return ParticipationResponse{
		ID:        p.ID,
		MatchID:   p.MatchID,
		MemberID:  p.MemberID,
		Status:    p.Status,
		Comment:   p.Comment,
		UpdatedAt: p.UpdatedAt,
	}
}

// MyVoteResponse reports Voted=false with no participation when the member
// has not voted yet.
type MyVoteResponse struct {
	Voted         bool                   `json:"voted"`
	Participation *ParticipationResponse `json:"participation,omitempty"`
}
