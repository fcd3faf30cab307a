package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"football-club/matchday/internal/constants"

	"github.com/jmoiron/sqlx"
)

// AudienceRow is one eligible member of a match's season, with their vote if
// they cast one.
type AudienceRow struct {
	MemberID   string         `db:"member_id"`
	MemberName string         `db:"member_name"`
	Status     sql.NullString `db:"participation_status"`
}

type StatusCount struct {
	Status string `db:"status"`
	Total  int64  `db:"total"`
}

// AudienceRepo runs read-model queries over memberships and votes with sqlx.
type AudienceRepo struct {
	db *sqlx.DB
}

func NewAudienceRepo(db *sqlx.DB) *AudienceRepo {
	return &AudienceRepo{db: db}
}

// ListMatchAudience returns every ACTIVE member of the season, plus PENDING
// members whose membership type is in bypassTypes. Votes by members outside
// that set never appear.
func (r *AudienceRepo) ListMatchAudience(ctx context.Context, matchID, seasonID string, bypassTypes []constants.MembershipType) ([]AudienceRow, error) {
	query := constants.ListMatchAudience
	args := []interface{}{matchID, seasonID, string(constants.MembershipActive)}

	if len(bypassTypes) > 0 {
		types := make([]string, len(bypassTypes))
		for i, t := range bypassTypes {
			types[i] = string(t)
		}
		var err error
		query, args, err = sqlx.In(constants.ListMatchAudienceWithBypass,
			matchID, seasonID, string(constants.MembershipActive), string(constants.MembershipPending), types)
		if err != nil {
			return nil, fmt.Errorf("failed to build audience query: %w", err)
		}
	}

	var rows []AudienceRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list match audience: %w", err)
	}
	return rows, nil
}

func (r *AudienceRepo) CountNotificationsByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	if err := r.db.SelectContext(ctx, &rows, constants.CountNotificationsByStatus); err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}
	return rows, nil
}

func (r *AudienceRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
