package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"
)

// Manual match defaults, relative to start.
const (
	DefaultDurationMinutes  = 120
	DefaultMinParticipants  = 10
	DefaultMaxParticipants  = 22
	defaultPollingLead      = 6 * 24 * time.Hour
	defaultSoftDeadlineLead = 2 * 24 * time.Hour
	defaultHardDeadlineLead = 1 * 24 * time.Hour
)

// MatchService builds fully scheduled matches from templates or manual input.
type MatchService struct {
	matches   MatchStore
	templates TemplateStore
	seasons   *SeasonService
	clock     Clock
}

func NewMatchService(matches MatchStore, templates TemplateStore, seasons *SeasonService, clock Clock) *MatchService {
	return &MatchService{matches: matches, templates: templates, seasons: seasons, clock: clock}
}

type FromTemplateInput struct {
	TemplateID string    `json:"template_id"`
	MatchDate  time.Time `json:"match_date"`
	SeasonID   *string   `json:"season_id,omitempty"`
}

// FromTemplate creates a match on MatchDate at the template's time of day.
// Deadlines are start minus each lead time.
func (s *MatchService) FromTemplate(ctx context.Context, in FromTemplateInput) (*models.Match, error) {
	tmpl, err := s.GetTemplate(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}

	start, err := combineDateAndTime(in.MatchDate, tmpl.StartTimeOfDay)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(tmpl.DurationMinutes) * time.Minute)

	season, err := s.seasons.Resolve(ctx, tmpl.ClubID, start, in.SeasonID)
	if err != nil {
		return nil, err
	}

	var soft *time.Time
	if tmpl.SoftLeadHours != nil {
		t := start.Add(-time.Duration(*tmpl.SoftLeadHours) * time.Hour)
		soft = &t
	}

	templateID := tmpl.ID
	match := &models.Match{
		ClubID:          tmpl.ClubID,
		SeasonID:        season.ID,
		TemplateID:      &templateID,
		Name:            tmpl.Name,
		Description:     tmpl.Description,
		Location:        tmpl.Location,
		StartTime:       start,
		EndTime:         end,
		PollingStartAt:  start.Add(-time.Duration(tmpl.PollingLeadHours) * time.Hour),
		SoftDeadlineAt:  soft,
		HardDeadlineAt:  start.Add(-time.Duration(tmpl.HardLeadHours) * time.Hour),
		MinParticipants: tmpl.MinParticipants,
		MaxParticipants: tmpl.MaxParticipants,
		Status:          constants.MatchRecruiting,
	}
	return s.persist(ctx, match)
}

type ManualMatchInput struct {
	ClubID          string     `json:"club_id"`
	SeasonID        *string    `json:"season_id,omitempty"`
	Name            string     `json:"name"`
	Description     *string    `json:"description,omitempty"`
	Location        string     `json:"location"`
	StartTime       time.Time  `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	PollingStartAt  *time.Time `json:"polling_start_at,omitempty"`
	SoftDeadlineAt  *time.Time `json:"soft_deadline_at,omitempty"`
	HardDeadlineAt  *time.Time `json:"hard_deadline_at,omitempty"`
	MinParticipants *int       `json:"min_participants,omitempty"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
}

// Manual creates a match from explicit fields. Missing deadlines default to
// six, two and one day before start, pulled earlier when an explicit later
// deadline precedes them.
func (s *MatchService) Manual(ctx context.Context, in ManualMatchInput) (*models.Match, error) {
	if in.ClubID == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, invalidInput("club_id, name and location are required")
	}
	if in.StartTime.IsZero() {
		return nil, invalidInput("start_time is required")
	}
	if in.DurationMinutes < 0 {
		return nil, invalidInput("duration_minutes must be positive")
	}

	start := in.StartTime.UTC()
	season, err := s.seasons.Resolve(ctx, in.ClubID, start, in.SeasonID)
	if err != nil {
		return nil, err
	}

	duration := in.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}

	hard := start.Add(-defaultHardDeadlineLead)
	if in.HardDeadlineAt != nil {
		hard = in.HardDeadlineAt.UTC()
	}
	// Defaulted deadlines never land after an explicit later one.
	soft := start.Add(-defaultSoftDeadlineLead)
	if in.SoftDeadlineAt != nil {
		soft = in.SoftDeadlineAt.UTC()
	} else if soft.After(hard) {
		soft = hard
	}
	polling := start.Add(-defaultPollingLead)
	if in.PollingStartAt != nil {
		polling = in.PollingStartAt.UTC()
	} else if polling.After(soft) {
		polling = soft
	}

	match := &models.Match{
		ClubID:          in.ClubID,
		SeasonID:        season.ID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Location:        strings.TrimSpace(in.Location),
		StartTime:       start,
		EndTime:         start.Add(time.Duration(duration) * time.Minute),
		PollingStartAt:  polling,
		SoftDeadlineAt:  &soft,
		HardDeadlineAt:  hard,
		MinParticipants: intOr(in.MinParticipants, DefaultMinParticipants),
		MaxParticipants: intOr(in.MaxParticipants, DefaultMaxParticipants),
		Status:          constants.MatchRecruiting,
	}
	return s.persist(ctx, match)
}

// persist is the shared final step of both factory paths.
func (s *MatchService) persist(ctx context.Context, match *models.Match) (*models.Match, error) {
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

type UpdateMatchInput struct {
	Name              *string                `json:"name,omitempty"`
	Description       *string                `json:"description,omitempty"`
	Location          *string                `json:"location,omitempty"`
	Status            *constants.MatchStatus `json:"status,omitempty"`
	PollingStartAt    *time.Time             `json:"polling_start_at,omitempty"`
	SoftDeadlineAt    *time.Time             `json:"soft_deadline_at,omitempty"`
	ClearSoftDeadline bool                   `json:"clear_soft_deadline,omitempty"`
	HardDeadlineAt    *time.Time             `json:"hard_deadline_at,omitempty"`
	MinParticipants   *int                   `json:"min_participants,omitempty"`
	MaxParticipants   *int                   `json:"max_participants,omitempty"`
}

// Update applies status transitions and deadline overrides. Cancelled and
// finished matches are immutable.
func (s *MatchService) Update(ctx context.Context, id string, in UpdateMatchInput) (*models.Match, error) {
	match, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.Status.Terminal() {
		return nil, ErrInvalidTransition.WithMessage("match is " + match.Status.String())
	}

	if in.Status != nil {
		if !in.Status.Valid() || !match.Status.CanTransitionTo(*in.Status) {
			return nil, ErrInvalidTransition
		}
		match.Status = *in.Status
	}
	if in.Name != nil {
		match.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		match.Description = in.Description
	}
	if in.Location != nil {
		match.Location = strings.TrimSpace(*in.Location)
	}
	if in.PollingStartAt != nil {
		match.PollingStartAt = in.PollingStartAt.UTC()
	}
	if in.ClearSoftDeadline {
		match.SoftDeadlineAt = nil
	} else if in.SoftDeadlineAt != nil {
		soft := in.SoftDeadlineAt.UTC()
		match.SoftDeadlineAt = &soft
	}
	if in.HardDeadlineAt != nil {
		match.HardDeadlineAt = in.HardDeadlineAt.UTC()
	}
	if in.MinParticipants != nil {
		match.MinParticipants = *in.MinParticipants
	}
	if in.MaxParticipants != nil {
		match.MaxParticipants = *in.MaxParticipants
	}

	if err := validateMatch(match); err != nil {
		return nil, err
	}
	if err := s.matches.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return match, nil
}

func (s *MatchService) Get(ctx context.Context, id string) (*models.Match, error) {
	match, err := s.matches.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// ListUpcoming returns a club's matches that have not started yet.
func (s *MatchService) ListUpcoming(ctx context.Context, clubID string) ([]models.Match, error) {
	return s.matches.ListUpcomingByClub(ctx, clubID, s.clock.Now())
}

type CreateTemplateInput struct {
	ClubID           string  `json:"club_id"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	Location         string  `json:"location"`
	DayOfWeek        *int    `json:"day_of_week,omitempty"`
	StartTimeOfDay   string  `json:"start_time_of_day"`
	DurationMinutes  *int    `json:"duration_minutes,omitempty"`
	MinParticipants  *int    `json:"min_participants,omitempty"`
	MaxParticipants  *int    `json:"max_participants,omitempty"`
	PollingLeadHours *int    `json:"polling_lead_hours,omitempty"`
	SoftLeadHours    *int    `json:"soft_lead_hours,omitempty"`
	HardLeadHours    *int    `json:"hard_lead_hours,omitempty"`
	// NoSoftDeadline creates matches gated by the hard deadline only.
	NoSoftDeadline bool `json:"no_soft_deadline,omitempty"`
}

// CreateTemplate validates lead times so every generated match satisfies
// polling <= soft <= hard <= start.
func (s *MatchService) CreateTemplate(ctx context.Context, in CreateTemplateInput) (*models.MatchTemplate, error) {
	if in.ClubID == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, invalidInput("club_id, name and location are required")
	}
	if _, _, err := parseTimeOfDay(in.StartTimeOfDay); err != nil {
		return nil, err
	}
	if in.DayOfWeek != nil && (*in.DayOfWeek < 1 || *in.DayOfWeek > 7) {
		return nil, invalidInput("day_of_week must be 1 (Monday) to 7 (Sunday)")
	}

	soft := 48
	if in.SoftLeadHours != nil {
		soft = *in.SoftLeadHours
	}
	var softLead *int
	if !in.NoSoftDeadline {
		softLead = &soft
	}
	tmpl := &models.MatchTemplate{
		ClubID:           in.ClubID,
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		Location:         strings.TrimSpace(in.Location),
		DayOfWeek:        in.DayOfWeek,
		StartTimeOfDay:   in.StartTimeOfDay,
		DurationMinutes:  intOr(in.DurationMinutes, DefaultDurationMinutes),
		MinParticipants:  intOr(in.MinParticipants, DefaultMinParticipants),
		MaxParticipants:  intOr(in.MaxParticipants, DefaultMaxParticipants),
		PollingLeadHours: intOr(in.PollingLeadHours, 144),
		SoftLeadHours:    softLead,
		HardLeadHours:    intOr(in.HardLeadHours, 24),
	}

	if tmpl.DurationMinutes <= 0 {
		return nil, invalidInput("duration_minutes must be positive")
	}
	if tmpl.MinParticipants < 0 || tmpl.MinParticipants > tmpl.MaxParticipants {
		return nil, ErrInvalidBounds
	}
	if in.NoSoftDeadline {
		soft = tmpl.HardLeadHours
	}
	if tmpl.HardLeadHours < 0 || soft < tmpl.HardLeadHours || tmpl.PollingLeadHours < soft {
		return nil, ErrInvalidDeadlines.WithMessage("lead times must satisfy polling >= soft >= hard >= 0")
	}

	if err := s.templates.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

func (s *MatchService) GetTemplate(ctx context.Context, id string) (*models.MatchTemplate, error) {
	tmpl, err := s.templates.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if tmpl == nil {
		return nil, ErrTemplateNotFound
	}
	return tmpl, nil
}

func (s *MatchService) ListTemplates(ctx context.Context, clubID string) ([]models.MatchTemplate, error) {
	return s.templates.ListByClub(ctx, clubID)
}

// validateMatch enforces start < end, sane bounds and deadline ordering.
func validateMatch(m *models.Match) error {
	if !m.StartTime.Before(m.EndTime) {
		return ErrInvalidRange
	}
	if m.MinParticipants < 0 || m.MinParticipants > m.MaxParticipants {
		return ErrInvalidBounds
	}
	if m.PollingStartAt.After(m.HardDeadlineAt) || m.HardDeadlineAt.After(m.StartTime) {
		return ErrInvalidDeadlines
	}
	if m.SoftDeadlineAt != nil {
		if m.PollingStartAt.After(*m.SoftDeadlineAt) || m.SoftDeadlineAt.After(m.HardDeadlineAt) {
			return ErrInvalidDeadlines
		}
	}
	return nil
}

// combineDateAndTime places an "HH:MM" UTC time of day on the calendar date of d.
func combineDateAndTime(d time.Time, timeOfDay string) (time.Time, error) {
	hour, minute, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := d.Date()
	return time.Date(y, m, day, hour, minute, 0, 0, time.UTC), nil
}

func parseTimeOfDay(s string) (int, int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, invalidInput("start_time_of_day must be HH:MM")
	}
	return t.Hour(), t.Minute(), nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
