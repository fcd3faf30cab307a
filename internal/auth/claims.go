package auth

import "football-club/matchday/internal/constants"

// UserClaims is what handlers know about the caller.
type UserClaims interface {
	MemberID() string
	ClubID() string
	Role() constants.MemberRole
	Source() string
}

type JWTClaims struct {
	MemberUUID string
	ClubUUID   string
	RoleValue  constants.MemberRole
	TokenID    string
}

func (c *JWTClaims) MemberID() string           { return c.MemberUUID }
func (c *JWTClaims) ClubID() string             { return c.ClubUUID }
func (c *JWTClaims) Role() constants.MemberRole { return c.RoleValue }
func (c *JWTClaims) Source() string             { return "JWT" }

// CanOperate reports whether claims belong to a manager or admin.
func CanOperate(c UserClaims) bool {
	return c != nil && c.Role().CanOperate()
}
