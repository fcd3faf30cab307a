package services

import (
	"context"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/db/repositories"
	models "football-club/matchday/internal/models/gorm"
)

// Store interfaces are declared where they are consumed. Lookups return
// (nil, nil) when the record does not exist.

type ClubStore interface {
	Create(ctx context.Context, club *models.Club) error
	Get(ctx context.Context, id string) (*models.Club, error)
	FindByName(ctx context.Context, name string) (*models.Club, error)
}

type MemberStore interface {
	Create(ctx context.Context, member *models.Member) error
	Get(ctx context.Context, id string) (*models.Member, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.Member, error)
	ListByClub(ctx context.Context, clubID string) ([]models.Member, error)
	UpdateChatToken(ctx context.Context, member *models.Member, token string) error
}

type SeasonStore interface {
	Get(ctx context.Context, id string) (*models.Season, error)
	FindByDateRange(ctx context.Context, clubID string, date time.Time) (*models.Season, error)
	Create(ctx context.Context, season *models.Season) error
	ListByClub(ctx context.Context, clubID string) ([]models.Season, error)
}

type MembershipStore interface {
	Get(ctx context.Context, id string) (*models.Membership, error)
	GetByMemberAndSeason(ctx context.Context, memberID, seasonID string) (*models.Membership, error)
	FindBySeasonWhereActive(ctx context.Context, seasonID string) ([]models.Membership, error)
	ListBySeason(ctx context.Context, seasonID string) ([]models.Membership, error)
	HasActiveMembership(ctx context.Context, memberID, seasonID string, now time.Time) (bool, error)
	Create(ctx context.Context, membership *models.Membership) error
	Update(ctx context.Context, membership *models.Membership) error
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type TemplateStore interface {
	Get(ctx context.Context, id string) (*models.MatchTemplate, error)
	Create(ctx context.Context, tmpl *models.MatchTemplate) error
	ListByClub(ctx context.Context, clubID string) ([]models.MatchTemplate, error)
}

type MatchStore interface {
	Get(ctx context.Context, id string) (*models.Match, error)
	ListSchedulable(ctx context.Context) ([]models.Match, error)
	ListUpcomingByClub(ctx context.Context, clubID string, now time.Time) ([]models.Match, error)
	Create(ctx context.Context, match *models.Match) error
	Update(ctx context.Context, match *models.Match) error
}

type ParticipationStore interface {
	Get(ctx context.Context, matchID, memberID string) (*models.Participation, error)
	ListByMatch(ctx context.Context, matchID string) ([]models.Participation, error)
	ListByMember(ctx context.Context, memberID string) ([]models.Participation, error)
	Upsert(ctx context.Context, p *models.Participation) (*models.Participation, error)
}

type NotificationStore interface {
	Get(ctx context.Context, id string) (*models.Notification, error)
	GetByMatchAndType(ctx context.Context, matchID string, nType constants.NotificationType) (*models.Notification, error)
	GetOrCreate(ctx context.Context, n *models.Notification) (*models.Notification, bool, error)
	UpdateStatus(ctx context.Context, id string, status constants.NotificationStatus, sentAt *time.Time) error
	ListByMatch(ctx context.Context, matchID string) ([]models.Notification, error)
}

// AudienceStore lists the ACTIVE members of a season with their vote on a match.
type AudienceStore interface {
	ListMatchAudience(ctx context.Context, matchID, seasonID string, bypassTypes []constants.MembershipType) ([]repositories.AudienceRow, error)
}

// Sender delivers text to a chat account identified by recipientToken.
type Sender interface {
	SendText(ctx context.Context, recipientToken, text string) error
}

// EventPublisher emits domain events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, eventType constants.EventType, payload interface{}) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, constants.EventType, interface{}) error { return nil }

// Clock is the current-time source. Every deadline comparison goes through it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f().UTC() }
