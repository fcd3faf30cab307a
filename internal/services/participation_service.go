package services

import (
	"context"
	"fmt"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/logging"
	models "football-club/matchday/internal/models/gorm"
)

// ParticipationService is the voting gatekeeper. A vote passes the
// eligibility gate, then the time window gate, then is upserted.
type ParticipationService struct {
	matches        MatchStore
	memberships    MembershipStore
	participations ParticipationStore
	clock          Clock

	// Membership types that may vote without an ACTIVE membership.
	bypassTypes map[constants.MembershipType]bool
}

func NewParticipationService(matches MatchStore, memberships MembershipStore, participations ParticipationStore, clock Clock) *ParticipationService {
	return &ParticipationService{
		matches:        matches,
		memberships:    memberships,
		participations: participations,
		clock:          clock,
		bypassTypes:    map[constants.MembershipType]bool{},
	}
}

// WithEligibilityBypass lets members whose season membership has one of the
// given types vote while it is still PENDING and unexpired. It is off unless
// configured.
func (s *ParticipationService) WithEligibilityBypass(types ...constants.MembershipType) *ParticipationService {
	for _, t := range types {
		s.bypassTypes[t] = true
	}
	return s
}

type VoteInput struct {
	MatchID  string                        `json:"match_id"`
	MemberID string                        `json:"member_id"`
	Status   constants.ParticipationStatus `json:"status"`
	Comment  *string                       `json:"comment,omitempty"`
}

func (s *ParticipationService) Vote(ctx context.Context, in VoteInput) (*models.Participation, error) {
	if !in.Status.Valid() {
		return nil, invalidInput("status must be ATTENDING, ABSENT or PENDING")
	}

	match, err := s.loadMatch(ctx, in.MatchID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.checkEligibility(ctx, match, in.MemberID, now); err != nil {
		return nil, err
	}

	if err := CheckVoteWindow(match, in.Status, now); err != nil {
		return nil, err
	}

	return s.upsert(ctx, in, now)
}

// CheckVoteWindow applies the time gates in UTC. PENDING is only accepted
// until the soft deadline.
func CheckVoteWindow(match *models.Match, status constants.ParticipationStatus, now time.Time) error {
	now = now.UTC()

	if match.Status.Terminal() {
		return ErrVotingClosed.WithMessage("Voting is closed, match is " + match.Status.String())
	}
	if !match.PollingStartAt.IsZero() && now.Before(match.PollingStartAt) {
		return ErrVotingNotStarted
	}
	if !match.HardDeadlineAt.IsZero() && now.After(match.HardDeadlineAt) {
		return ErrVotingClosed
	}
	if status == constants.ParticipationPending && match.SoftDeadlineAt != nil && now.After(*match.SoftDeadlineAt) {
		return ErrPendingNoLongerAllowed
	}
	return nil
}

func (s *ParticipationService) checkEligibility(ctx context.Context, match *models.Match, memberID string, now time.Time) error {
	active, err := s.memberships.HasActiveMembership(ctx, memberID, match.SeasonID, now)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if active {
		return nil
	}

	if len(s.bypassTypes) > 0 {
		ms, err := s.memberships.GetByMemberAndSeason(ctx, memberID, match.SeasonID)
		if err != nil {
			return fmt.Errorf("failed to load membership: %w", err)
		}
		if ms != nil && ms.Status == constants.MembershipPending && s.bypassTypes[ms.Type] && !now.After(ms.ExpiresAt) {
			return nil
		}
	}
	return ErrNotEligible
}

type OverrideInput struct {
	MatchID    string                        `json:"match_id"`
	MemberID   string                        `json:"member_id"`
	Status     constants.ParticipationStatus `json:"status"`
	Comment    *string                       `json:"comment,omitempty"`
	OperatorID string                        `json:"-"`
}

// AdminOverride records a vote for any member at any time. Callers must have
// authorized the operator; every override is audit logged.
func (s *ParticipationService) AdminOverride(ctx context.Context, in OverrideInput) (*models.Participation, error) {
	if !in.Status.Valid() {
		return nil, invalidInput("status must be ATTENDING, ABSENT or PENDING")
	}
	if in.MemberID == "" {
		return nil, invalidInput("member_id is required")
	}
	if _, err := s.loadMatch(ctx, in.MatchID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	previous, err := s.participations.Get(ctx, in.MatchID, in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participation: %w", err)
	}

	p, err := s.upsert(ctx, VoteInput{MatchID: in.MatchID, MemberID: in.MemberID, Status: in.Status, Comment: in.Comment}, now)
	if err != nil {
		return nil, err
	}

	previousStatus := ""
	if previous != nil {
		previousStatus = previous.Status.String()
	}
	logging.Info("Participation overridden by operator",
		"operator_id", in.OperatorID,
		"match_id", in.MatchID,
		"member_id", in.MemberID,
		"previous_status", previousStatus,
		"status", in.Status.String(),
	)
	return p, nil
}

func (s *ParticipationService) upsert(ctx context.Context, in VoteInput, now time.Time) (*models.Participation, error) {
	p, err := s.participations.Upsert(ctx, &models.Participation{
		MatchID:   in.MatchID,
		MemberID:  in.MemberID,
		Status:    in.Status,
		Comment:   in.Comment,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}
	return p, nil
}

// GetMyVote returns the member's vote, or nil when they have not voted.
func (s *ParticipationService) GetMyVote(ctx context.Context, matchID, memberID string) (*models.Participation, error) {
	if _, err := s.loadMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return s.participations.Get(ctx, matchID, memberID)
}

func (s *ParticipationService) ListMine(ctx context.Context, memberID string) ([]models.Participation, error) {
	return s.participations.ListByMember(ctx, memberID)
}

func (s *ParticipationService) ListByMatch(ctx context.Context, matchID string) ([]models.Participation, error) {
	if _, err := s.loadMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return s.participations.ListByMatch(ctx, matchID)
}

func (s *ParticipationService) loadMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}
