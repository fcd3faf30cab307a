package constants

type (
	APIStatus   string
	CachePrefix string
	EventType   string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixPassLock CachePrefix = "LOCK_"

	EventNotificationCreated EventType = "notification.created"
	EventNotificationSent    EventType = "notification.sent"
)

// Job names used for pass locks, metrics labels and logs.
const (
	JobDeadlineScheduler = "deadline_scheduler"
	JobMembershipExpiry  = "membership_expiry"
)
