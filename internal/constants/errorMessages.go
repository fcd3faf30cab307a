package constants

// Error codes returned in API error envelopes.
const (
	CodeInvalidSeason          = "INVALID_SEASON"
	CodeNoSeasonForDate        = "NO_SEASON_FOR_DATE"
	CodeTemplateNotFound       = "TEMPLATE_NOT_FOUND"
	CodeMatchNotFound          = "MATCH_NOT_FOUND"
	CodeNotificationNotFound   = "NOTIFICATION_NOT_FOUND"
	CodeMembershipNotFound     = "MEMBERSHIP_NOT_FOUND"
	CodeMemberNotFound         = "MEMBER_NOT_FOUND"
	CodeNotEligible            = "NOT_ELIGIBLE"
	CodeVotingNotStarted       = "VOTING_NOT_STARTED"
	CodeVotingClosed           = "VOTING_CLOSED"
	CodePendingNoLongerAllowed = "PENDING_NO_LONGER_ALLOWED"
	CodeDuplicateMembership    = "DUPLICATE_MEMBERSHIP"
	CodeInvalidRange           = "INVALID_RANGE"
	CodeInvalidBounds          = "INVALID_BOUNDS"
	CodeInvalidDeadlines       = "INVALID_DEADLINES"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeInvalidInput           = "INVALID_INPUT"
	CodeDeliveryFailed         = "DELIVERY_FAILED"
)

const (
	MsgInvalidSeason          = "Season does not exist"
	MsgNoSeasonForDate        = "No season covers the requested date"
	MsgTemplateNotFound       = "Match template not found"
	MsgMatchNotFound          = "Match not found"
	MsgNotificationNotFound   = "Notification not found"
	MsgMembershipNotFound     = "Membership not found"
	MsgMemberNotFound         = "Member not found"
	MsgNotEligible            = "Member has no active membership for this season"
	MsgVotingNotStarted       = "Voting has not started yet"
	MsgVotingClosed           = "Voting is closed"
	MsgPendingNoLongerAllowed = "Undecided votes are no longer accepted, choose attending or absent"
	MsgDuplicateMembership    = "Member already holds a membership for this season"
	MsgInvalidRange           = "Start must be before end"
	MsgInvalidBounds          = "Participant bounds are invalid"
	MsgInvalidDeadlines       = "Deadlines must satisfy polling start <= soft deadline <= hard deadline <= start"
	MsgInvalidTransition      = "Status transition is not allowed"
	MsgDeliveryFailed         = "Failed to deliver notification"
)
