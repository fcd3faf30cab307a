package gorm

import (
	"time"

	"football-club/matchday/internal/constants"
	_ "football-club/matchday/internal/security"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

type Club struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name      string    `gorm:"column:name;not null"`
	EmblemURL *string   `gorm:"column:emblem_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Club) TableName() string {
	return "clubs"
}

func (c *Club) BeforeCreate(tx *gormlib.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Member is a person registered with a club. ChatToken is the member's
// chat-platform access token and is encrypted at rest.
type Member struct {
	ID         string               `gorm:"column:id;primaryKey;type:varchar(36)"`
	ClubID     string               `gorm:"column:club_id;type:varchar(36);index;not null"`
	ExternalID string               `gorm:"column:external_id;uniqueIndex;not null"`
	Name       string               `gorm:"column:name;not null"`
	Role       constants.MemberRole `gorm:"column:role;type:varchar(20);default:'MEMBER'"`
	ChatToken  string               `gorm:"column:chat_token;serializer:encrypted"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gormlib.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Role == "" {
		m.Role = constants.RoleMember
	}
	return nil
}
