package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

const (
	guestMembershipDays = 7
	trialMembershipDays = 30
)

// MembershipService manages season memberships.
type MembershipService struct {
	memberships MembershipStore
	seasons     SeasonStore
	members     MemberStore
	clock       Clock
}

func NewMembershipService(memberships MembershipStore, seasons SeasonStore, members MemberStore, clock Clock) *MembershipService {
	return &MembershipService{memberships: memberships, seasons: seasons, members: members, clock: clock}
}

type CreateMembershipInput struct {
	MemberID string                     `json:"member_id"`
	SeasonID string                     `json:"season_id"`
	Type     constants.MembershipType   `json:"type"`
	Status   constants.MembershipStatus `json:"status"`
	JoinedAt *time.Time                 `json:"joined_at,omitempty"`
}

// ExpiryFor derives a membership's expiry. REGULAR runs to season end, GUEST
// for seven days, ON_TRIAL for thirty days but never past season end.
func ExpiryFor(mType constants.MembershipType, joinedAt time.Time, season *models.Season) time.Time {
	switch mType {
	case constants.MembershipGuest:
		return joinedAt.AddDate(0, 0, guestMembershipDays)
	case constants.MembershipOnTrial:
		trialEnd := joinedAt.AddDate(0, 0, trialMembershipDays)
		if trialEnd.After(season.EndAt) {
			return season.EndAt
		}
		return trialEnd
	default:
		return season.EndAt
	}
}

// Create records a membership with its expiry fixed at creation. A member may
// hold only one membership per season.
func (s *MembershipService) Create(ctx context.Context, in CreateMembershipInput) (*models.Membership, error) {
	if in.Type == "" {
		in.Type = constants.MembershipRegular
	}
	if in.Status == "" {
		in.Status = constants.MembershipPending
	}
	if !in.Type.Valid() || !in.Status.Valid() {
		return nil, invalidInput("unknown membership type or status")
	}

	season, err := s.seasons.Get(ctx, in.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season: %w", err)
	}
	if season == nil {
		return nil, ErrInvalidSeason
	}

	member, err := s.members.Get(ctx, in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if member.ClubID != season.ClubID {
		return nil, invalidInput("member and season belong to different clubs")
	}

	existing, err := s.memberships.GetByMemberAndSeason(ctx, in.MemberID, in.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to check memberships: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateMembership
	}

	joined := s.clock.Now()
	if in.JoinedAt != nil {
		joined = in.JoinedAt.UTC()
	}

	membership := &models.Membership{
		MemberID:  in.MemberID,
		ClubID:    season.ClubID,
		SeasonID:  season.ID,
		Type:      in.Type,
		Status:    in.Status,
		JoinedAt:  joined,
		ExpiresAt: ExpiryFor(in.Type, joined, season).UTC(),
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		if errors.Is(err, gormlib.ErrDuplicatedKey) {
			return nil, ErrDuplicateMembership
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return membership, nil
}

// UpdateStatus changes only the status; the expiry is never recomputed.
func (s *MembershipService) UpdateStatus(ctx context.Context, id string, status constants.MembershipStatus) (*models.Membership, error) {
	if !status.Valid() {
		return nil, invalidInput("unknown membership status")
	}

	membership, err := s.memberships.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}

	membership.Status = status
	if err := s.memberships.Update(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}
	return membership, nil
}

func (s *MembershipService) ListBySeason(ctx context.Context, seasonID string) ([]models.Membership, error) {
	return s.memberships.ListBySeason(ctx, seasonID)
}

func (s *MembershipService) HasActiveMembership(ctx context.Context, memberID, seasonID string) (bool, error) {
	return s.memberships.HasActiveMembership(ctx, memberID, seasonID, s.clock.Now())
}

// ExpireDue marks memberships past their expiry as EXPIRED.
func (s *MembershipService) ExpireDue(ctx context.Context) (int64, error) {
	n, err := s.memberships.ExpireDue(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire memberships: %w", err)
	}
	return n, nil
}

func (s *MembershipService) Get(ctx context.Context, id string) (*models.Membership, error) {
	membership, err := s.memberships.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}
	return membership, nil
}
