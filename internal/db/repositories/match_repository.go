package repositories

import (
	"context"
	"errors"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// MatchTemplateRepo handles match template configuration
type MatchTemplateRepo struct {
	db *gormlib.DB
}

func NewMatchTemplateRepo(db *gormlib.DB) *MatchTemplateRepo {
	return &MatchTemplateRepo{db: db}
}

func (r *MatchTemplateRepo) Get(ctx context.Context, id string) (*gorm.MatchTemplate, error) {
	var tmpl gorm.MatchTemplate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tmpl, nil
}

func (r *MatchTemplateRepo) Create(ctx context.Context, tmpl *gorm.MatchTemplate) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *MatchTemplateRepo) ListByClub(ctx context.Context, clubID string) ([]gorm.MatchTemplate, error) {
	var templates []gorm.MatchTemplate
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("name ASC").
		Find(&templates).Error
	return templates, err
}

// MatchRepo handles concrete matches
type MatchRepo struct {
	db *gormlib.DB
}

func NewMatchRepo(db *gormlib.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) Get(ctx context.Context, id string) (*gorm.Match, error) {
	var match gorm.Match
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

// ListSchedulable returns matches the deadline scheduler still watches.
func (r *MatchRepo) ListSchedulable(ctx context.Context) ([]gorm.Match, error) {
	var matches []gorm.Match
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []constants.MatchStatus{constants.MatchCancelled, constants.MatchFinished}).
		Order("start_time ASC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepo) ListUpcomingByClub(ctx context.Context, clubID string, now time.Time) ([]gorm.Match, error) {
	var matches []gorm.Match
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND start_time >= ?", clubID, now.UTC()).
		Order("start_time ASC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepo) Create(ctx context.Context, match *gorm.Match) error {
	normalizeMatchTimes(match)
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *MatchRepo) Update(ctx context.Context, match *gorm.Match) error {
	normalizeMatchTimes(match)
	return r.db.WithContext(ctx).Save(match).Error
}

func normalizeMatchTimes(m *gorm.Match) {
	m.StartTime = m.StartTime.UTC()
	m.EndTime = m.EndTime.UTC()
	m.PollingStartAt = m.PollingStartAt.UTC()
	m.HardDeadlineAt = m.HardDeadlineAt.UTC()
	if m.SoftDeadlineAt != nil {
		soft := m.SoftDeadlineAt.UTC()
		m.SoftDeadlineAt = &soft
	}
}
