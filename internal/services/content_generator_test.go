package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/db/repositories"
	models "football-club/matchday/internal/models/gorm"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAudience struct {
	rows []repositories.AudienceRow
	err  error
}

func (s stubAudience) ListMatchAudience(ctx context.Context, matchID, seasonID string, bypassTypes []constants.MembershipType) ([]repositories.AudienceRow, error) {
	return s.rows, s.err
}

func row(name, status string) repositories.AudienceRow {
	return repositories.AudienceRow{
		MemberID:   "id-" + name,
		MemberName: name,
		Status:     sql.NullString{String: status, Valid: status != ""},
	}
}

func TestBucketAudience(t *testing.T) {
	stats := BucketAudience([]repositories.AudienceRow{
		row("A", "ATTENDING"),
		row("B", "ABSENT"),
		row("C", ""),
		row("D", "PENDING"),
	})

	want := AudienceStats{
		Attending: []string{"A"},
		Absent:    []string{"B"},
		Pending:   []string{"D"},
		Ghosts:    []string{"C"},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"D", "C"}, stats.Unresolved())
}

func TestContentGenerator_GhostsFromDatabase(t *testing.T) {
	f := setupVoting(t)
	ctx := context.Background()

	names := []string{"A", "B", "C"}
	members := map[string]*models.Member{}
	for _, n := range names {
		members[n] = f.env.member(t, f.club.ID, n)
		f.env.activeMembership(t, members[n].ID, f.season.ID)
	}
	// Not eligible: no ACTIVE membership, must not show up as a ghost.
	outsider := f.env.member(t, f.club.ID, "Z")
	_, err := f.env.Memberships.Create(ctx, CreateMembershipInput{MemberID: outsider.ID, SeasonID: f.season.ID})
	require.NoError(t, err)

	_, err = f.vote(members["A"].ID, constants.ParticipationAttending)
	require.NoError(t, err)
	_, err = f.vote(members["B"].ID, constants.ParticipationAbsent)
	require.NoError(t, err)

	stats, err := f.env.Generator.ComputeAudienceStats(ctx, f.match)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, stats.Attending)
	assert.Equal(t, []string{"B"}, stats.Absent)
	assert.Empty(t, stats.Pending)
	assert.Equal(t, []string{"C"}, stats.Ghosts)
}

func TestContentGenerator_FormatStartUsesDisplayZone(t *testing.T) {
	g := NewContentGenerator(stubAudience{}, seoul, "")

	// Friday 15:00 UTC is Saturday 00:00 in Seoul.
	start := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/15(토) 00:00", g.FormatStart(start))

	utc := NewContentGenerator(stubAudience{}, nil, "")
	assert.Equal(t, "03/14(금) 15:00", utc.FormatStart(start))
}

func TestContentGenerator_Render(t *testing.T) {
	g := NewContentGenerator(stubAudience{}, seoul, "https://club.example/vote")
	match := &models.Match{
		Name:      "Sunday League",
		Location:  "Riverside Pitch",
		StartTime: time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC),
	}
	stats := AudienceStats{
		Attending: []string{"A", "E"},
		Absent:    []string{"B"},
		Pending:   []string{"D"},
		Ghosts:    []string{"C"},
	}

	t.Run("polling start has no statistics", func(t *testing.T) {
		text := g.Render(match, constants.NotificationPollingStart, stats)
		assert.True(t, strings.HasPrefix(text, "🗳️ [투표 시작] Sunday League"))
		assert.Contains(t, text, "📅 03/15(토) 20:00")
		assert.Contains(t, text, "📍 Riverside Pitch")
		assert.NotContains(t, text, "✅")
		assert.True(t, strings.HasSuffix(text, "🔗 투표: https://club.example/vote"))
	})

	t.Run("soft deadline calls out ghosts", func(t *testing.T) {
		text := g.Render(match, constants.NotificationSoftDeadline, stats)
		assert.Contains(t, text, "✅2 ⏸1 ❌1 👻1")
		assert.Contains(t, text, "⚽ 참석자:\nA, E")
		assert.Contains(t, text, "⏸ 미정:\nD")
		assert.Contains(t, text, "👇 미투표:\nC")
		assert.Contains(t, text, "🚨 투표해주세요!")
	})

	t.Run("soft deadline without ghosts", func(t *testing.T) {
		text := g.Render(match, constants.NotificationSoftDeadline, AudienceStats{})
		assert.Contains(t, text, "⚽ 참석자:\n-")
		assert.NotContains(t, text, "미투표")
	})

	t.Run("hard deadline lists unresolved", func(t *testing.T) {
		text := g.Render(match, constants.NotificationHardDeadline, stats)
		assert.True(t, strings.HasPrefix(text, "🛑 투표 마감 - Sunday League"))
		assert.Contains(t, text, "✅2 ❌1 👻2")
		assert.Contains(t, text, "📌 확인 필요:\nD, C")
	})

	t.Run("manual summary", func(t *testing.T) {
		text := g.Render(match, constants.NotificationManual, stats)
		assert.True(t, strings.HasPrefix(text, "📢 참석 현황 - Sunday League"))
	})
}
