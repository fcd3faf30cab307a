package requests

import "football-club/matchday/internal/constants"

// VoteRequest is the body of a member's own vote. Match and member come from
// the path and the token.
type VoteRequest struct {
	Status  constants.ParticipationStatus `json:"status"`
	Comment *string                       `json:"comment,omitempty"`
}

type OverrideRequest struct {
	MatchID  string                        `json:"match_id"`
	MemberID string                        `json:"member_id"`
	Status   constants.ParticipationStatus `json:"status"`
	Comment  *string                       `json:"comment,omitempty"`
}
