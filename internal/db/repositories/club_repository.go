package repositories

import (
	"context"
	"errors"

	"football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// ClubRepo handles club and member records
type ClubRepo struct {
	db *gormlib.DB
}

func NewClubRepo(db *gormlib.DB) *ClubRepo {
	return &ClubRepo{db: db}
}

func (r *ClubRepo) Create(ctx context.Context, club *gorm.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *ClubRepo) Get(ctx context.Context, id string) (*gorm.Club, error) {
	var club gorm.Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

// FindByName is used by seeding to stay idempotent.
func (r *ClubRepo) FindByName(ctx context.Context, name string) (*gorm.Club, error) {
	var club gorm.Club
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&club).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

// MemberRepo handles member records. Chat tokens pass through the encrypted
// serializer, so callers only see plaintext.
type MemberRepo struct {
	db *gormlib.DB
}

func NewMemberRepo(db *gormlib.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

func (r *MemberRepo) Create(ctx context.Context, member *gorm.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepo) Get(ctx context.Context, id string) (*gorm.Member, error) {
	var member gorm.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepo) GetByExternalID(ctx context.Context, externalID string) (*gorm.Member, error) {
	var member gorm.Member
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&member).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepo) ListByClub(ctx context.Context, clubID string) ([]gorm.Member, error) {
	var members []gorm.Member
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

// UpdateChatToken replaces the stored token. Save is used so the serializer runs.
func (r *MemberRepo) UpdateChatToken(ctx context.Context, member *gorm.Member, token string) error {
	member.ChatToken = token
	return r.db.WithContext(ctx).Save(member).Error
}
