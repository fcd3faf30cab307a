package services

import (
	"context"
	"testing"
	"time"

	"football-club/matchday/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipService_ExpiryByType(t *testing.T) {
	joined := seasonStart.AddDate(0, 0, 10)
	seasonEnd := seasonStart.AddDate(0, 3, 0)

	tests := []struct {
		name  string
		mType constants.MembershipType
		join  time.Time
		want  time.Time
	}{
		{name: "regular runs to season end", mType: constants.MembershipRegular, join: joined, want: seasonEnd},
		{name: "guest gets seven days", mType: constants.MembershipGuest, join: joined, want: joined.AddDate(0, 0, 7)},
		{name: "trial gets thirty days", mType: constants.MembershipOnTrial, join: joined, want: joined.AddDate(0, 0, 30)},
		{name: "trial capped at season end", mType: constants.MembershipOnTrial, join: seasonEnd.AddDate(0, 0, -5), want: seasonEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.join)
			club := env.club(t, "FC Riverside")
			season := env.season(t, club.ID, "Spring", seasonStart, seasonEnd)
			member := env.member(t, club.ID, "Alice")

			ms, err := env.Memberships.Create(context.Background(), CreateMembershipInput{
				MemberID: member.ID, SeasonID: season.ID, Type: tt.mType,
			})
			require.NoError(t, err)
			assert.True(t, ms.ExpiresAt.Equal(tt.want), "got %s want %s", ms.ExpiresAt, tt.want)
			assert.Equal(t, constants.MembershipPending, ms.Status)
			assert.Equal(t, club.ID, ms.ClubID)
		})
	}
}

func TestMembershipService_OnePerSeason(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	club := env.club(t, "FC Riverside")
	season := env.season(t, club.ID, "Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	member := env.member(t, club.ID, "Alice")

	env.activeMembership(t, member.ID, season.ID)

	_, err := env.Memberships.Create(context.Background(), CreateMembershipInput{
		MemberID: member.ID, SeasonID: season.ID, Type: constants.MembershipGuest,
	})
	assert.ErrorIs(t, err, ErrDuplicateMembership)
}

func TestMembershipService_UnknownSeasonOrMember(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	club := env.club(t, "FC Riverside")
	season := env.season(t, club.ID, "Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	member := env.member(t, club.ID, "Alice")
	ctx := context.Background()

	_, err := env.Memberships.Create(ctx, CreateMembershipInput{MemberID: member.ID, SeasonID: "nope"})
	assert.ErrorIs(t, err, ErrInvalidSeason)

	_, err = env.Memberships.Create(ctx, CreateMembershipInput{MemberID: "nope", SeasonID: season.ID})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMembershipService_UpdateStatusKeepsExpiry(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	club := env.club(t, "FC Riverside")
	season := env.season(t, club.ID, "Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	member := env.member(t, club.ID, "Alice")
	ctx := context.Background()

	ms, err := env.Memberships.Create(ctx, CreateMembershipInput{MemberID: member.ID, SeasonID: season.ID, Type: constants.MembershipGuest})
	require.NoError(t, err)

	env.clock.Set(seasonStart.AddDate(0, 0, 3))
	updated, err := env.Memberships.UpdateStatus(ctx, ms.ID, constants.MembershipActive)
	require.NoError(t, err)
	assert.Equal(t, constants.MembershipActive, updated.Status)
	assert.True(t, updated.ExpiresAt.Equal(ms.ExpiresAt))

	_, err = env.Memberships.UpdateStatus(ctx, "missing", constants.MembershipActive)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestMembershipService_ExpireDue(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	club := env.club(t, "FC Riverside")
	season := env.season(t, club.ID, "Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	guest := env.member(t, club.ID, "Guest")
	regular := env.member(t, club.ID, "Regular")
	ctx := context.Background()

	_, err := env.Memberships.Create(ctx, CreateMembershipInput{
		MemberID: guest.ID, SeasonID: season.ID, Type: constants.MembershipGuest, Status: constants.MembershipActive,
	})
	require.NoError(t, err)
	env.activeMembership(t, regular.ID, season.ID)

	env.clock.Set(seasonStart.AddDate(0, 0, 8))
	n, err := env.Memberships.ExpireDue(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	ok, err := env.Memberships.HasActiveMembership(ctx, guest.ID, season.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = env.Memberships.HasActiveMembership(ctx, regular.ID, season.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMembershipService_RejectsMemberOfAnotherClub(t *testing.T) {
	env := newTestEnv(t, seasonStart)
	home := env.club(t, "FC Riverside")
	away := env.club(t, "Hilltop United")
	season := env.season(t, home.ID, "Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	stranger := env.member(t, away.ID, "Stranger")

	_, err := env.Memberships.Create(context.Background(), CreateMembershipInput{MemberID: stranger.ID, SeasonID: season.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, KindValidation, KindOf(err))
}
