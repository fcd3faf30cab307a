package services

import (
	"context"
	"fmt"
	"strings"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"
)

// ClubService manages clubs and their member records.
type ClubService struct {
	clubs   ClubStore
	members MemberStore
}

func NewClubService(clubs ClubStore, members MemberStore) *ClubService {
	return &ClubService{clubs: clubs, members: members}
}

func (s *ClubService) CreateClub(ctx context.Context, name string, emblemURL *string) (*models.Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("club name is required")
	}

	club := &models.Club{Name: name, EmblemURL: emblemURL}
	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}
	return club, nil
}

func (s *ClubService) GetClub(ctx context.Context, id string) (*models.Club, error) {
	return s.clubs.Get(ctx, id)
}

type CreateMemberInput struct {
	ClubID     string               `json:"club_id"`
	ExternalID string               `json:"external_id"`
	Name       string               `json:"name"`
	Role       constants.MemberRole `json:"role"`
	ChatToken  string               `json:"chat_token,omitempty"`
}

func (s *ClubService) CreateMember(ctx context.Context, in CreateMemberInput) (*models.Member, error) {
	if in.ClubID == "" || in.ExternalID == "" || strings.TrimSpace(in.Name) == "" {
		return nil, invalidInput("club_id, external_id and name are required")
	}
	if in.Role == "" {
		in.Role = constants.RoleMember
	}
	if !in.Role.Valid() {
		return nil, invalidInput("unknown role " + in.Role.String())
	}

	club, err := s.clubs.Get(ctx, in.ClubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load club: %w", err)
	}
	if club == nil {
		return nil, invalidInput("club does not exist")
	}

	member := &models.Member{
		ClubID:     in.ClubID,
		ExternalID: in.ExternalID,
		Name:       strings.TrimSpace(in.Name),
		Role:       in.Role,
		ChatToken:  in.ChatToken,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

func (s *ClubService) GetMember(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *ClubService) ListMembers(ctx context.Context, clubID string) ([]models.Member, error) {
	return s.members.ListByClub(ctx, clubID)
}

// SetChatToken stores the member's chat access token. It is encrypted by the store.
func (s *ClubService) SetChatToken(ctx context.Context, memberID, token string) error {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return err
	}
	return s.members.UpdateChatToken(ctx, member, token)
}
