package gorm

import (
	"time"

	"football-club/matchday/internal/constants"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// MatchTemplate is recurring schedule configuration. Matches copy what they
// need from it at creation and never read it again.
type MatchTemplate struct {
	ID          string  `gorm:"column:id;primaryKey;type:varchar(36)"`
	ClubID      string  `gorm:"column:club_id;type:varchar(36);index;not null"`
	Name        string  `gorm:"column:name;not null"`
	Description *string `gorm:"column:description"`
	Location    string  `gorm:"column:location;not null"`

	// Schedule, UTC. DayOfWeek is ISO (1=Monday .. 7=Sunday) and informational.
	DayOfWeek       *int   `gorm:"column:day_of_week"`
	StartTimeOfDay  string `gorm:"column:start_time_of_day;type:varchar(5);not null"`
	DurationMinutes int    `gorm:"column:duration_minutes;default:120;not null"`

	MinParticipants int `gorm:"column:min_participants;default:10"`
	MaxParticipants int `gorm:"column:max_participants;default:22"`

	// Lead times in hours before start. A nil soft lead yields matches
	// without a soft deadline.
	PollingLeadHours int  `gorm:"column:polling_lead_hours;default:144;not null"`
	SoftLeadHours    *int `gorm:"column:soft_lead_hours"`
	HardLeadHours    int  `gorm:"column:hard_lead_hours;default:24;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (MatchTemplate) TableName() string {
	return "match_templates"
}

func (t *MatchTemplate) BeforeCreate(tx *gormlib.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type Match struct {
	ID         string  `gorm:"column:id;primaryKey;type:varchar(36)"`
	ClubID     string  `gorm:"column:club_id;type:varchar(36);index:idx_match_club_start,priority:1;not null"`
	SeasonID   string  `gorm:"column:season_id;type:varchar(36);index;not null"`
	TemplateID *string `gorm:"column:template_id;type:varchar(36)"`

	// Snapshot fields
	Name        string  `gorm:"column:name;not null"`
	Description *string `gorm:"column:description"`
	Location    string  `gorm:"column:location;not null"`

	StartTime time.Time `gorm:"column:start_time;index:idx_match_club_start,priority:2;not null"`
	EndTime   time.Time `gorm:"column:end_time;not null"`

	PollingStartAt time.Time  `gorm:"column:polling_start_at;not null"`
	SoftDeadlineAt *time.Time `gorm:"column:soft_deadline_at"`
	HardDeadlineAt time.Time  `gorm:"column:hard_deadline_at;not null"`

	MinParticipants int `gorm:"column:min_participants"`
	MaxParticipants int `gorm:"column:max_participants"`

	Status    constants.MatchStatus `gorm:"column:status;type:varchar(20);index;not null"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) BeforeCreate(tx *gormlib.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Participation is one member's vote on one match.
type Participation struct {
	ID        string                        `gorm:"column:id;primaryKey;type:varchar(36)"`
	MatchID   string                        `gorm:"column:match_id;type:varchar(36);uniqueIndex:idx_participation_match_member,priority:1;not null"`
	MemberID  string                        `gorm:"column:member_id;type:varchar(36);uniqueIndex:idx_participation_match_member,priority:2;index;not null"`
	Status    constants.ParticipationStatus `gorm:"column:status;type:varchar(20);not null"`
	Comment   *string                       `gorm:"column:comment"`
	UpdatedAt time.Time                     `gorm:"column:updated_at;not null"`
}

func (Participation) TableName() string {
	return "participations"
}

func (p *Participation) BeforeCreate(tx *gormlib.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Notification holds the frozen text generated for one milestone of a match.
type Notification struct {
	ID        string                       `gorm:"column:id;primaryKey;type:varchar(36)"`
	MatchID   string                       `gorm:"column:match_id;type:varchar(36);uniqueIndex:idx_notification_match_type,priority:1;not null"`
	Type      constants.NotificationType   `gorm:"column:type;type:varchar(20);uniqueIndex:idx_notification_match_type,priority:2;not null"`
	Status    constants.NotificationStatus `gorm:"column:status;type:varchar(20);index;not null"`
	Content   string                       `gorm:"column:content;type:text;not null"`
	SentAt    *time.Time                   `gorm:"column:sent_at"`
	CreatedAt time.Time                    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time                    `gorm:"column:updated_at;autoUpdateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gormlib.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Club{},
		&Member{},
		&Season{},
		&Membership{},
		&MatchTemplate{},
		&Match{},
		&Participation{},
		&Notification{},
	}
}
