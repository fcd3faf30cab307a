package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	models "football-club/matchday/internal/models/gorm"
)

// SeasonService resolves which season a date belongs to and manages seasons.
type SeasonService struct {
	seasons SeasonStore
}

func NewSeasonService(seasons SeasonStore) *SeasonService {
	return &SeasonService{seasons: seasons}
}

// Resolve returns the season for a club at candidate. An explicit season id
// is trusted without checking its range, but it must belong to the club. Without one, only a season whose
// range contains candidate qualifies; there is no fallback to the active
// season.
func (s *SeasonService) Resolve(ctx context.Context, clubID string, candidate time.Time, explicitSeasonID *string) (*models.Season, error) {
	if explicitSeasonID != nil && *explicitSeasonID != "" {
		season, err := s.seasons.Get(ctx, *explicitSeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to load season: %w", err)
		}
		if season == nil {
			return nil, ErrInvalidSeason
		}
		if season.ClubID != clubID {
			return nil, ErrInvalidSeason.WithMessage("Season belongs to another club")
		}
		return season, nil
	}

	season, err := s.seasons.FindByDateRange(ctx, clubID, candidate.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to find season by date: %w", err)
	}
	if season == nil {
		return nil, ErrNoSeasonForDate
	}
	return season, nil
}

type CreateSeasonInput struct {
	ClubID   string    `json:"club_id"`
	Name     string    `json:"name"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	IsActive *bool     `json:"is_active,omitempty"`
}

func (s *SeasonService) Create(ctx context.Context, in CreateSeasonInput) (*models.Season, error) {
	if strings.TrimSpace(in.ClubID) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, invalidInput("club_id and name are required")
	}
	if !in.StartAt.Before(in.EndAt) {
		return nil, ErrInvalidRange
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	season := &models.Season{
		ClubID:   in.ClubID,
		Name:     strings.TrimSpace(in.Name),
		StartAt:  in.StartAt.UTC(),
		EndAt:    in.EndAt.UTC(),
		IsActive: active,
	}
	if err := s.seasons.Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return season, nil
}

func (s *SeasonService) ListByClub(ctx context.Context, clubID string) ([]models.Season, error) {
	return s.seasons.ListByClub(ctx, clubID)
}

func (s *SeasonService) Get(ctx context.Context, id string) (*models.Season, error) {
	season, err := s.seasons.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load season: %w", err)
	}
	if season == nil {
		return nil, ErrInvalidSeason
	}
	return season, nil
}
