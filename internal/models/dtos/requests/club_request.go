package requests

import "football-club/matchday/internal/constants"

type CreateClubRequest struct {
	Name      string  `json:"name"`
	EmblemURL *string `json:"emblem_url,omitempty"`
}

type CreateMemberRequest struct {
	ExternalID string               `json:"external_id"`
	Name       string               `json:"name"`
	Role       constants.MemberRole `json:"role,omitempty"`
	ChatToken  string               `json:"chat_token,omitempty"`
}

type SetChatTokenRequest struct {
	ChatToken string `json:"chat_token"`
}

type UpdateMembershipRequest struct {
	Status constants.MembershipStatus `json:"status"`
}
