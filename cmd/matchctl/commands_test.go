package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommand_IssuesParseableToken(t *testing.T) {
	cfg.JWTSecret = "cli-secret"
	tokenMember, tokenClub, tokenRole, tokenTTL = "member-1", "club-1", "MANAGER", time.Hour

	var out bytes.Buffer
	tokenCmd.SetOut(&out)
	require.NoError(t, tokenCmd.RunE(tokenCmd, nil))

	claims, err := auth.NewTokenService([]byte("cli-secret")).Parse(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "member-1", claims.MemberID())
	assert.Equal(t, "club-1", claims.ClubID())
	assert.Equal(t, constants.RoleManager, claims.Role())
}

func TestTokenCommand_RejectsUnknownRole(t *testing.T) {
	cfg.JWTSecret = "cli-secret"
	tokenMember, tokenClub, tokenRole, tokenTTL = "member-1", "club-1", "OWNER", time.Hour

	require.Error(t, tokenCmd.RunE(tokenCmd, nil))
}
