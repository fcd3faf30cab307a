package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepo handles milestone notifications, unique per (match_id, type)
type NotificationRepo struct {
	db *gormlib.DB
}

func NewNotificationRepo(db *gormlib.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Get(ctx context.Context, id string) (*gorm.Notification, error) {
	var n gorm.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) GetByMatchAndType(ctx context.Context, matchID string, nType constants.NotificationType) (*gorm.Notification, error) {
	var n gorm.Notification
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND type = ?", matchID, nType).
		First(&n).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) ListByMatch(ctx context.Context, matchID string) ([]gorm.Notification, error) {
	var rows []gorm.Notification
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *NotificationRepo) Create(ctx context.Context, n *gorm.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// GetOrCreate inserts n unless a notification for the same match and type
// exists. The unique index makes the check and the insert one statement, so
// concurrent callers cannot both create. created is false when the stored row
// was returned instead.
func (r *NotificationRepo) GetOrCreate(ctx context.Context, n *gorm.Notification) (*gorm.Notification, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}, {Name: "type"}},
			DoNothing: true,
		}).
		Create(n)
	if res.Error != nil {
		return nil, false, fmt.Errorf("failed to create notification: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return n, true, nil
	}

	existing, err := r.GetByMatchAndType(ctx, n.MatchID, n.Type)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("notification %s/%s vanished after conflict", n.MatchID, n.Type)
	}
	return existing, false, nil
}

// UpdateStatus sets status and, when sentAt is non-nil, the sent timestamp.
func (r *NotificationRepo) UpdateStatus(ctx context.Context, id string, status constants.NotificationStatus, sentAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if sentAt != nil {
		updates["sent_at"] = sentAt.UTC()
	}

	res := r.db.WithContext(ctx).
		Model(&gorm.Notification{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gormlib.ErrRecordNotFound
	}
	return nil
}
