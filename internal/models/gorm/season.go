package gorm

import (
	"time"

	"football-club/matchday/internal/constants"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// Season is an inclusive [StartAt, EndAt] range scoping memberships and matches.
type Season struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	ClubID    string    `gorm:"column:club_id;type:varchar(36);index:idx_season_club_range,priority:1;not null"`
	Name      string    `gorm:"column:name;not null"`
	StartAt   time.Time `gorm:"column:start_at;index:idx_season_club_range,priority:2;not null"`
	EndAt     time.Time `gorm:"column:end_at;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Season) TableName() string {
	return "seasons"
}

func (s *Season) BeforeCreate(tx *gormlib.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Contains reports whether t falls inside the inclusive season range.
func (s Season) Contains(t time.Time) bool {
	return !t.Before(s.StartAt) && !t.After(s.EndAt)
}

// Membership is a member's eligibility record for one season. A member holds
// at most one membership per season.
type Membership struct {
	ID        string                     `gorm:"column:id;primaryKey;type:varchar(36)"`
	MemberID  string                     `gorm:"column:member_id;type:varchar(36);uniqueIndex:idx_membership_member_season,priority:1;not null"`
	ClubID    string                     `gorm:"column:club_id;type:varchar(36);index;not null"`
	SeasonID  string                     `gorm:"column:season_id;type:varchar(36);uniqueIndex:idx_membership_member_season,priority:2;index:idx_membership_season_status,priority:1;not null"`
	Type      constants.MembershipType   `gorm:"column:type;type:varchar(20);not null"`
	Status    constants.MembershipStatus `gorm:"column:status;type:varchar(20);index:idx_membership_season_status,priority:2;not null"`
	JoinedAt  time.Time                  `gorm:"column:joined_at;not null"`
	ExpiresAt time.Time                  `gorm:"column:expires_at;not null"`
	UpdatedAt time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Membership) TableName() string {
	return "memberships"
}

func (m *Membership) BeforeCreate(tx *gormlib.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
