package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/logging"
	models "football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// NotificationEvent is the payload published when a notification is created or sent.
type NotificationEvent struct {
	NotificationID string                       `json:"notification_id"`
	MatchID        string                       `json:"match_id"`
	Type           constants.NotificationType   `json:"type"`
	Status         constants.NotificationStatus `json:"status"`
	OccurredAt     time.Time                    `json:"occurred_at"`
}

// NotificationService owns the notification lifecycle:
// PENDING -> SENT_TO_ADMIN -> PUBLISHED.
type NotificationService struct {
	notifications NotificationStore
	matches       MatchStore
	members       MemberStore
	generator     *ContentGenerator
	sender        Sender
	events        EventPublisher
	clock         Clock
}

func NewNotificationService(
	notifications NotificationStore,
	matches MatchStore,
	members MemberStore,
	generator *ContentGenerator,
	sender Sender,
	events EventPublisher,
	clock Clock,
) *NotificationService {
	if events == nil {
		events = noopPublisher{}
	}
	return &NotificationService{
		notifications: notifications,
		matches:       matches,
		members:       members,
		generator:     generator,
		sender:        sender,
		events:        events,
		clock:         clock,
	}
}

func (s *NotificationService) loadMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// Preview renders the text a notification would carry without persisting it.
func (s *NotificationService) Preview(ctx context.Context, matchID string, nType constants.NotificationType) (string, error) {
	if !nType.Valid() {
		return "", invalidInput("unknown notification type")
	}
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return "", err
	}
	return s.render(ctx, match, nType)
}

// Stats exposes the audience buckets of a match.
func (s *NotificationService) Stats(ctx context.Context, matchID string) (AudienceStats, error) {
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return AudienceStats{}, err
	}
	stats, err := s.generator.ComputeAudienceStats(ctx, match)
	if err != nil {
		return AudienceStats{}, fmt.Errorf("failed to compute audience: %w", err)
	}
	return stats, nil
}

func (s *NotificationService) render(ctx context.Context, match *models.Match, nType constants.NotificationType) (string, error) {
	var stats AudienceStats
	if nType != constants.NotificationPollingStart {
		var err error
		if stats, err = s.generator.ComputeAudienceStats(ctx, match); err != nil {
			return "", fmt.Errorf("failed to compute audience: %w", err)
		}
	}
	return s.generator.Render(match, nType, stats), nil
}

// EnsurePending makes sure a notification of nType exists for the match.
// Content is rendered only when none exists yet; the final insert is an
// atomic get-or-create, so at most one row exists per (match, type).
func (s *NotificationService) EnsurePending(ctx context.Context, match *models.Match, nType constants.NotificationType) (*models.Notification, bool, error) {
	existing, err := s.notifications.GetByMatchAndType(ctx, match.ID, nType)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check notification: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	content, err := s.render(ctx, match, nType)
	if err != nil {
		return nil, false, err
	}

	n, created, err := s.notifications.GetOrCreate(ctx, &models.Notification{
		MatchID: match.ID,
		Type:    nType,
		Status:  constants.NotificationPending,
		Content: content,
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		s.emit(ctx, constants.EventNotificationCreated, n)
	}
	return n, created, nil
}

// Generate creates a notification on operator request. It defaults to MANUAL.
func (s *NotificationService) Generate(ctx context.Context, matchID string, nType constants.NotificationType) (*models.Notification, bool, error) {
	if nType == "" {
		nType = constants.NotificationManual
	}
	if !nType.Valid() {
		return nil, false, invalidInput("unknown notification type")
	}
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, false, err
	}
	return s.EnsurePending(ctx, match, nType)
}

func (s *NotificationService) Get(ctx context.Context, id string) (*models.Notification, error) {
	n, err := s.notifications.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification: %w", err)
	}
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

func (s *NotificationService) ListByMatch(ctx context.Context, matchID string) ([]models.Notification, error) {
	if _, err := s.loadMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return s.notifications.ListByMatch(ctx, matchID)
}

// SendToAnnouncer delivers the stored content to the announcer's chat account
// and marks it SENT_TO_ADMIN. A failed delivery leaves the status untouched
// so the call can be retried.
func (s *NotificationService) SendToAnnouncer(ctx context.Context, notificationID, announcerID string) (*models.Notification, error) {
	n, err := s.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	announcer, err := s.members.Get(ctx, announcerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load announcer: %w", err)
	}
	if announcer == nil {
		return nil, ErrMemberNotFound
	}
	if announcer.ChatToken == "" {
		return nil, invalidInput("announcer has no chat token")
	}

	if err := s.sender.SendText(ctx, announcer.ChatToken, n.Content); err != nil {
		logging.Warn("Notification delivery failed",
			"notification_id", n.ID,
			"match_id", n.MatchID,
			"error", err.Error(),
		)
		return nil, ErrDeliveryFailed.Wrap(err)
	}

	sentAt := s.clock.Now()
	if err := s.notifications.UpdateStatus(ctx, n.ID, constants.NotificationSentToAdmin, &sentAt); err != nil {
		return nil, fmt.Errorf("failed to update notification status: %w", err)
	}
	n.Status = constants.NotificationSentToAdmin
	n.SentAt = &sentAt

	s.emit(ctx, constants.EventNotificationSent, n)
	return n, nil
}

// Publish records that the announcer relayed the message to the club.
func (s *NotificationService) Publish(ctx context.Context, notificationID string) (*models.Notification, error) {
	n, err := s.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	switch n.Status {
	case constants.NotificationPublished:
		return n, nil
	case constants.NotificationSentToAdmin:
	default:
		return nil, ErrInvalidTransition.WithMessage("notification must be sent before it is published")
	}

	if err := s.notifications.UpdateStatus(ctx, n.ID, constants.NotificationPublished, nil); err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to update notification status: %w", err)
	}
	n.Status = constants.NotificationPublished
	return n, nil
}

func (s *NotificationService) emit(ctx context.Context, eventType constants.EventType, n *models.Notification) {
	err := s.events.Publish(ctx, eventType, NotificationEvent{
		NotificationID: n.ID,
		MatchID:        n.MatchID,
		Type:           n.Type,
		Status:         n.Status,
		OccurredAt:     s.clock.Now(),
	})
	if err != nil {
		logging.Warn("Failed to publish notification event",
			"event", string(eventType),
			"notification_id", n.ID,
			"error", err.Error(),
		)
	}
}
