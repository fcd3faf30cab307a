package repositories

import (
	"context"
	"errors"
	"time"

	"football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// SeasonRepo handles season lookups
type SeasonRepo struct {
	db *gormlib.DB
}

func NewSeasonRepo(db *gormlib.DB) *SeasonRepo {
	return &SeasonRepo{db: db}
}

func (r *SeasonRepo) Get(ctx context.Context, id string) (*gorm.Season, error) {
	var season gorm.Season
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&season).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &season, nil
}

// FindByDateRange returns the club season whose inclusive range contains date.
// Overlapping seasons resolve to the one that started last.
func (r *SeasonRepo) FindByDateRange(ctx context.Context, clubID string, date time.Time) (*gorm.Season, error) {
	var season gorm.Season
	date = date.UTC()

	err := r.db.WithContext(ctx).
		Where("club_id = ? AND start_at <= ? AND end_at >= ?", clubID, date, date).
		Order("start_at DESC").
		First(&season).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &season, nil
}

func (r *SeasonRepo) Create(ctx context.Context, season *gorm.Season) error {
	season.StartAt = season.StartAt.UTC()
	season.EndAt = season.EndAt.UTC()
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *SeasonRepo) ListByClub(ctx context.Context, clubID string) ([]gorm.Season, error) {
	var seasons []gorm.Season
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("start_at DESC").
		Find(&seasons).Error
	return seasons, err
}

// FindByName is used by seeding to stay idempotent.
func (r *SeasonRepo) FindByName(ctx context.Context, clubID, name string) (*gorm.Season, error) {
	var season gorm.Season
	err := r.db.WithContext(ctx).Where("club_id = ? AND name = ?", clubID, name).First(&season).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &season, nil
}
