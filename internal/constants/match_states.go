package constants

import "database/sql/driver"

type MembershipType string

const (
	MembershipRegular MembershipType = "REGULAR"
	MembershipOnTrial MembershipType = "ON_TRIAL"
	MembershipGuest   MembershipType = "GUEST"
)

func (t MembershipType) String() string { return string(t) }

func (t MembershipType) Valid() bool {
	switch t {
	case MembershipRegular, MembershipOnTrial, MembershipGuest:
		return true
	}
	return false
}

func (t *MembershipType) Scan(src interface{}) error {
	s, err := scanString("MembershipType", src)
	*t = MembershipType(s)
	return err
}

func (t MembershipType) Value() (driver.Value, error) { return string(t), nil }

type MembershipStatus string

const (
	MembershipPending MembershipStatus = "PENDING"
	MembershipActive  MembershipStatus = "ACTIVE"
	MembershipExpired MembershipStatus = "EXPIRED"
)

func (s MembershipStatus) String() string { return string(s) }

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipActive, MembershipExpired:
		return true
	}
	return false
}

func (s *MembershipStatus) Scan(src interface{}) error {
	v, err := scanString("MembershipStatus", src)
	*s = MembershipStatus(v)
	return err
}

func (s MembershipStatus) Value() (driver.Value, error) { return string(s), nil }

type MatchStatus string

const (
	MatchRecruiting MatchStatus = "RECRUITING"
	MatchClosed     MatchStatus = "CLOSED"
	MatchCancelled  MatchStatus = "CANCELLED"
	MatchFinished   MatchStatus = "FINISHED"
)

func (s MatchStatus) String() string { return string(s) }

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchRecruiting, MatchClosed, MatchCancelled, MatchFinished:
		return true
	}
	return false
}

// Terminal states accept no further transitions, votes or milestones.
func (s MatchStatus) Terminal() bool {
	return s == MatchCancelled || s == MatchFinished
}

// CanTransitionTo lists the allowed status edges of a match.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case MatchRecruiting:
		return next == MatchClosed || next == MatchCancelled || next == MatchFinished
	case MatchClosed:
		return next == MatchRecruiting || next == MatchCancelled || next == MatchFinished
	}
	return false
}

func (s *MatchStatus) Scan(src interface{}) error {
	v, err := scanString("MatchStatus", src)
	*s = MatchStatus(v)
	return err
}

func (s MatchStatus) Value() (driver.Value, error) { return string(s), nil }

type ParticipationStatus string

const (
	ParticipationAttending ParticipationStatus = "ATTENDING"
	ParticipationAbsent    ParticipationStatus = "ABSENT"
	ParticipationPending   ParticipationStatus = "PENDING"
)

func (s ParticipationStatus) String() string { return string(s) }

func (s ParticipationStatus) Valid() bool {
	switch s {
	case ParticipationAttending, ParticipationAbsent, ParticipationPending:
		return true
	}
	return false
}

func (s *ParticipationStatus) Scan(src interface{}) error {
	v, err := scanString("ParticipationStatus", src)
	*s = ParticipationStatus(v)
	return err
}

func (s ParticipationStatus) Value() (driver.Value, error) { return string(s), nil }

type NotificationType string

const (
	NotificationPollingStart NotificationType = "POLLING_START"
	NotificationSoftDeadline NotificationType = "SOFT_DEADLINE"
	NotificationHardDeadline NotificationType = "HARD_DEADLINE"
	NotificationManual       NotificationType = "MANUAL"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationPollingStart, NotificationSoftDeadline, NotificationHardDeadline, NotificationManual:
		return true
	}
	return false
}

func (t *NotificationType) Scan(src interface{}) error {
	v, err := scanString("NotificationType", src)
	*t = NotificationType(v)
	return err
}

func (t NotificationType) Value() (driver.Value, error) { return string(t), nil }

type NotificationStatus string

const (
	NotificationPending     NotificationStatus = "PENDING"
	NotificationSentToAdmin NotificationStatus = "SENT_TO_ADMIN"
	NotificationPublished   NotificationStatus = "PUBLISHED"
)

func (s NotificationStatus) String() string { return string(s) }

func (s *NotificationStatus) Scan(src interface{}) error {
	v, err := scanString("NotificationStatus", src)
	*s = NotificationStatus(v)
	return err
}

func (s NotificationStatus) Value() (driver.Value, error) { return string(s), nil }
