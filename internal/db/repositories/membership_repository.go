package repositories

import (
	"context"
	"errors"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// MembershipRepo handles season membership records
type MembershipRepo struct {
	db *gormlib.DB
}

func NewMembershipRepo(db *gormlib.DB) *MembershipRepo {
	return &MembershipRepo{db: db}
}

func (r *MembershipRepo) Get(ctx context.Context, id string) (*gorm.Membership, error) {
	var membership gorm.Membership
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&membership).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepo) GetByMemberAndSeason(ctx context.Context, memberID, seasonID string) (*gorm.Membership, error) {
	var membership gorm.Membership
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND season_id = ?", memberID, seasonID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepo) FindBySeasonWhereActive(ctx context.Context, seasonID string) ([]gorm.Membership, error) {
	var memberships []gorm.Membership
	err := r.db.WithContext(ctx).
		Where("season_id = ? AND status = ?", seasonID, constants.MembershipActive).
		Find(&memberships).Error
	return memberships, err
}

func (r *MembershipRepo) ListBySeason(ctx context.Context, seasonID string) ([]gorm.Membership, error) {
	var memberships []gorm.Membership
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("joined_at ASC").
		Find(&memberships).Error
	return memberships, err
}

// HasActiveMembership reports whether the member holds an ACTIVE membership
// in the season that has not expired at now. The expiry job may not have
// caught up yet, so expires_at is checked here too.
func (r *MembershipRepo) HasActiveMembership(ctx context.Context, memberID, seasonID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gorm.Membership{}).
		Where("member_id = ? AND season_id = ? AND status = ? AND expires_at >= ?",
			memberID, seasonID, constants.MembershipActive, now.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a membership. A second membership for the same member and
// season fails with gorm.ErrDuplicatedKey.
func (r *MembershipRepo) Create(ctx context.Context, membership *gorm.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *MembershipRepo) Update(ctx context.Context, membership *gorm.Membership) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

// ExpireDue marks ACTIVE memberships whose expiry has passed as EXPIRED.
func (r *MembershipRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gorm.Membership{}).
		Where("status = ? AND expires_at < ?", constants.MembershipActive, now.UTC()).
		Update("status", constants.MembershipExpired)
	return res.RowsAffected, res.Error
}
