package repositories

import (
	"context"
	"errors"
	"fmt"

	"football-club/matchday/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParticipationRepo handles votes keyed by (match_id, member_id)
type ParticipationRepo struct {
	db *gormlib.DB
}

func NewParticipationRepo(db *gormlib.DB) *ParticipationRepo {
	return &ParticipationRepo{db: db}
}

func (r *ParticipationRepo) Get(ctx context.Context, matchID, memberID string) (*gorm.Participation, error) {
	var p gorm.Participation
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND member_id = ?", matchID, memberID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepo) ListByMatch(ctx context.Context, matchID string) ([]gorm.Participation, error) {
	var rows []gorm.Participation
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("updated_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *ParticipationRepo) ListByMember(ctx context.Context, memberID string) ([]gorm.Participation, error) {
	var rows []gorm.Participation
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// Upsert writes the vote, overwriting status, comment and timestamp of an
// existing row. Last write wins.
func (r *ParticipationRepo) Upsert(ctx context.Context, p *gorm.Participation) (*gorm.Participation, error) {
	p.UpdatedAt = p.UpdatedAt.UTC()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}, {Name: "member_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "comment", "updated_at"}),
		}).
		Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert participation: %w", err)
	}

	// The row id is the original one on conflict, so read it back.
	return r.Get(ctx, p.MatchID, p.MemberID)
}
