package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seasonStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestSeasonService_ResolveByContainment(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	ctx := context.Background()

	club := env.club(t, "FC Riverside")
	spring := env.season(t, club.ID, "2025 Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	autumn := env.season(t, club.ID, "2025 Autumn", seasonStart.AddDate(0, 6, 0), seasonStart.AddDate(0, 9, 0))

	inside := []time.Time{
		seasonStart.Add(time.Second),
		seasonStart.AddDate(0, 1, 15),
		seasonStart.AddDate(0, 3, 0).Add(-time.Second),
	}
	for _, d := range inside {
		got, err := env.Seasons.Resolve(ctx, club.ID, d, nil)
		require.NoError(t, err, d)
		assert.Equal(t, spring.ID, got.ID, d)
	}

	got, err := env.Seasons.Resolve(ctx, club.ID, seasonStart.AddDate(0, 7, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, autumn.ID, got.ID)

	// The gap between seasons is a configuration error, not the active season.
	for _, d := range []time.Time{
		seasonStart.AddDate(0, 4, 0),
		seasonStart.AddDate(-1, 0, 0),
		seasonStart.AddDate(1, 0, 0),
	} {
		_, err := env.Seasons.Resolve(ctx, club.ID, d, nil)
		assert.ErrorIs(t, err, ErrNoSeasonForDate, d)
		assert.Equal(t, KindNotFound, KindOf(err))
	}
}

func TestSeasonService_ResolveScopedToClub(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	a := env.club(t, "A")
	b := env.club(t, "B")
	env.season(t, a.ID, "A season", seasonStart, seasonStart.AddDate(0, 3, 0))

	_, err := env.Seasons.Resolve(context.Background(), b.ID, seasonStart.AddDate(0, 1, 0), nil)
	assert.ErrorIs(t, err, ErrNoSeasonForDate)
}

func TestSeasonService_ExplicitSeasonIsTrusted(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	ctx := context.Background()

	club := env.club(t, "FC Riverside")
	spring := env.season(t, club.ID, "2025 Spring", seasonStart, seasonStart.AddDate(0, 3, 0))

	// Outside the season's range but explicitly requested.
	got, err := env.Seasons.Resolve(ctx, club.ID, seasonStart.AddDate(2, 0, 0), &spring.ID)
	require.NoError(t, err)
	assert.Equal(t, spring.ID, got.ID)

	_, err = env.Seasons.Resolve(ctx, club.ID, seasonStart, strPtr("missing"))
	assert.ErrorIs(t, err, ErrInvalidSeason)
}

func TestSeasonService_ExplicitSeasonMustBelongToClub(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	ctx := context.Background()

	home := env.club(t, "FC Riverside")
	away := env.club(t, "Harbour United")
	env.season(t, home.ID, "2025 Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	awaySeason := env.season(t, away.ID, "2025 Spring", seasonStart, seasonStart.AddDate(0, 3, 0))

	_, err := env.Seasons.Resolve(ctx, home.ID, seasonStart.AddDate(0, 1, 0), &awaySeason.ID)
	assert.ErrorIs(t, err, ErrInvalidSeason)

	_, err = env.Matches.Manual(ctx, ManualMatchInput{
		ClubID: home.ID, Name: "Friendly", Location: "Riverside Pitch",
		StartTime: seasonStart.AddDate(0, 1, 0), SeasonID: &awaySeason.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidSeason)

	upcoming, err := env.Matches.ListUpcoming(ctx, home.ID)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

func TestSeasonService_CreateValidatesRange(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	club := env.club(t, "FC Riverside")

	_, err := env.Seasons.Create(context.Background(), CreateSeasonInput{
		ClubID: club.ID, Name: "Backwards", StartAt: seasonStart, EndAt: seasonStart,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, KindValidation, KindOf(err))

	seasons, err := env.Seasons.ListByClub(context.Background(), club.ID)
	require.NoError(t, err)
	assert.Empty(t, seasons)
}
