package services

import (
	"context"
	"testing"
	"time"

	"football-club/matchday/internal/constants"
	models "football-club/matchday/internal/models/gorm"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMatchEnv(t *testing.T) (*testEnv, *models.Club, *models.Season) {
	t.Helper()
	env := newTestEnv(t, seasonStart)
	club := env.club(t, "FC Riverside")
	season := env.season(t, club.ID, "2025 Spring", seasonStart, seasonStart.AddDate(0, 3, 0))
	return env, club, season
}

func TestMatchService_FromTemplateDerivesDeadlines(t *testing.T) {
	env, club, season := setupMatchEnv(t)
	ctx := context.Background()

	tmpl, err := env.Matches.CreateTemplate(ctx, CreateTemplateInput{
		ClubID: club.ID, Name: "Saturday Night", Location: "Riverside Pitch",
		StartTimeOfDay: "11:00", DayOfWeek: intPtr(6),
		PollingLeadHours: intPtr(144), SoftLeadHours: intPtr(48), HardLeadHours: intPtr(24),
	})
	require.NoError(t, err)

	// Seoul evening on the 15th is 11:00 UTC on the 15th.
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	match, err := env.Matches.FromTemplate(ctx, FromTemplateInput{TemplateID: tmpl.ID, MatchDate: date})
	require.NoError(t, err)

	start := time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC)
	want := struct {
		Start, End, Polling, Soft, Hard time.Time
		SeasonID                        string
		Min, Max                        int
		Status                          constants.MatchStatus
	}{
		Start:    start,
		End:      start.Add(120 * time.Minute),
		Polling:  start.Add(-144 * time.Hour),
		Soft:     start.Add(-48 * time.Hour),
		Hard:     start.Add(-24 * time.Hour),
		SeasonID: season.ID,
		Min:      DefaultMinParticipants,
		Max:      DefaultMaxParticipants,
		Status:   constants.MatchRecruiting,
	}
	require.NotNil(t, match.SoftDeadlineAt)
	got := want
	got.Start, got.End, got.Polling, got.Soft, got.Hard = match.StartTime, match.EndTime, match.PollingStartAt, *match.SoftDeadlineAt, match.HardDeadlineAt
	got.SeasonID, got.Min, got.Max, got.Status = match.SeasonID, match.MinParticipants, match.MaxParticipants, match.Status
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("match mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, match.TemplateID)
	assert.Equal(t, tmpl.ID, *match.TemplateID)
}

func TestMatchService_DeadlineOrderingHolds(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	ctx := context.Background()

	leads := []struct{ polling, soft, hard int }{
		{144, 48, 24},
		{72, 72, 0},
		{24, 24, 24},
		{168, 25, 1},
	}
	for _, l := range leads {
		tmpl, err := env.Matches.CreateTemplate(ctx, CreateTemplateInput{
			ClubID: club.ID, Name: "Weekly", Location: "Pitch", StartTimeOfDay: "20:30",
			PollingLeadHours: intPtr(l.polling), SoftLeadHours: intPtr(l.soft), HardLeadHours: intPtr(l.hard),
		})
		require.NoError(t, err)

		m, err := env.Matches.FromTemplate(ctx, FromTemplateInput{TemplateID: tmpl.ID, MatchDate: seasonStart.AddDate(0, 1, 0)})
		require.NoError(t, err)
		assert.False(t, m.PollingStartAt.After(*m.SoftDeadlineAt))
		assert.False(t, m.SoftDeadlineAt.After(m.HardDeadlineAt))
		assert.False(t, m.HardDeadlineAt.After(m.StartTime))
		assert.True(t, m.StartTime.Before(m.EndTime))
	}
}

func TestMatchService_CreateTemplateRejectsBadLeads(t *testing.T) {
	env, club, _ := setupMatchEnv(t)

	tests := []struct {
		name string
		in   CreateTemplateInput
		want error
	}{
		{name: "soft after hard", in: CreateTemplateInput{SoftLeadHours: intPtr(12), HardLeadHours: intPtr(24)}, want: ErrInvalidDeadlines},
		{name: "polling after soft", in: CreateTemplateInput{PollingLeadHours: intPtr(24), SoftLeadHours: intPtr(48)}, want: ErrInvalidDeadlines},
		{name: "negative hard", in: CreateTemplateInput{HardLeadHours: intPtr(-1)}, want: ErrInvalidDeadlines},
		{name: "min above max", in: CreateTemplateInput{MinParticipants: intPtr(30), MaxParticipants: intPtr(10)}, want: ErrInvalidBounds},
		{name: "bad time of day", in: CreateTemplateInput{StartTimeOfDay: "25:99"}, want: ErrInvalidInput},
		{name: "bad weekday", in: CreateTemplateInput{DayOfWeek: intPtr(8)}, want: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			in.ClubID, in.Name, in.Location = club.ID, "Weekly", "Pitch"
			if in.StartTimeOfDay == "" {
				in.StartTimeOfDay = "20:00"
			}
			_, err := env.Matches.CreateTemplate(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMatchService_TemplateWithoutSoftDeadline(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	ctx := context.Background()

	tmpl, err := env.Matches.CreateTemplate(ctx, CreateTemplateInput{
		ClubID: club.ID, Name: "Friendly", Location: "Pitch", StartTimeOfDay: "09:00", NoSoftDeadline: true,
	})
	require.NoError(t, err)
	assert.Nil(t, tmpl.SoftLeadHours)

	m, err := env.Matches.FromTemplate(ctx, FromTemplateInput{TemplateID: tmpl.ID, MatchDate: seasonStart.AddDate(0, 0, 20)})
	require.NoError(t, err)
	assert.Nil(t, m.SoftDeadlineAt)
}

func TestMatchService_FromTemplateFailures(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	ctx := context.Background()

	_, err := env.Matches.FromTemplate(ctx, FromTemplateInput{TemplateID: "missing", MatchDate: seasonStart.AddDate(0, 0, 10)})
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	tmpl, err := env.Matches.CreateTemplate(ctx, CreateTemplateInput{
		ClubID: club.ID, Name: "Weekly", Location: "Pitch", StartTimeOfDay: "20:00",
	})
	require.NoError(t, err)

	// Outside every season.
	_, err = env.Matches.FromTemplate(ctx, FromTemplateInput{TemplateID: tmpl.ID, MatchDate: seasonStart.AddDate(1, 0, 0)})
	assert.ErrorIs(t, err, ErrNoSeasonForDate)

	_, err = env.Matches.FromTemplate(ctx, FromTemplateInput{TemplateID: tmpl.ID, MatchDate: seasonStart.AddDate(0, 0, 10), SeasonID: strPtr("missing")})
	assert.ErrorIs(t, err, ErrInvalidSeason)

	env.clock.Set(seasonStart.AddDate(-1, 0, 0))
	upcoming, err := env.Matches.ListUpcoming(ctx, club.ID)
	require.NoError(t, err)
	assert.Empty(t, upcoming, "failed factory calls must not persist a match")
}

func TestMatchService_ManualDefaults(t *testing.T) {
	env, club, season := setupMatchEnv(t)
	start := seasonStart.AddDate(0, 0, 20).Add(11 * time.Hour)

	m, err := env.Matches.Manual(context.Background(), ManualMatchInput{
		ClubID: club.ID, Name: "Cup Qualifier", Location: "City Stadium", StartTime: start,
	})
	require.NoError(t, err)

	assert.Equal(t, season.ID, m.SeasonID)
	assert.True(t, m.EndTime.Equal(start.Add(2*time.Hour)))
	assert.True(t, m.PollingStartAt.Equal(start.AddDate(0, 0, -6)))
	require.NotNil(t, m.SoftDeadlineAt)
	assert.True(t, m.SoftDeadlineAt.Equal(start.AddDate(0, 0, -2)))
	assert.True(t, m.HardDeadlineAt.Equal(start.AddDate(0, 0, -1)))
	assert.Equal(t, 10, m.MinParticipants)
	assert.Equal(t, 22, m.MaxParticipants)
	assert.Nil(t, m.TemplateID)
}

func TestMatchService_ManualClampsDefaultsToExplicitDeadlines(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	start := seasonStart.AddDate(0, 0, 20).Add(11 * time.Hour)
	hard := start.AddDate(0, 0, -3)

	m, err := env.Matches.Manual(context.Background(), ManualMatchInput{
		ClubID: club.ID, Name: "Early Close", Location: "City Stadium", StartTime: start,
		HardDeadlineAt: timePtr(hard),
	})
	require.NoError(t, err)

	require.NotNil(t, m.SoftDeadlineAt)
	assert.True(t, m.SoftDeadlineAt.Equal(hard), "defaulted soft deadline is pulled back to the hard deadline")
	assert.True(t, m.HardDeadlineAt.Equal(hard))
	assert.True(t, m.PollingStartAt.Equal(start.AddDate(0, 0, -6)))

	m, err = env.Matches.Manual(context.Background(), ManualMatchInput{
		ClubID: club.ID, Name: "Very Early Close", Location: "City Stadium", StartTime: start.Add(time.Hour),
		HardDeadlineAt: timePtr(start.AddDate(0, 0, -8)),
	})
	require.NoError(t, err)
	assert.True(t, m.PollingStartAt.Equal(start.AddDate(0, 0, -8)))
	assert.True(t, m.SoftDeadlineAt.Equal(start.AddDate(0, 0, -8)))
}

func TestMatchService_ManualValidation(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	start := seasonStart.AddDate(0, 0, 20)
	ctx := context.Background()

	_, err := env.Matches.Manual(ctx, ManualMatchInput{ClubID: club.ID, Location: "Pitch", StartTime: start})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.Matches.Manual(ctx, ManualMatchInput{
		ClubID: club.ID, Name: "Late polling", Location: "Pitch", StartTime: start,
		PollingStartAt: timePtr(start.Add(-time.Hour)),
	})
	assert.ErrorIs(t, err, ErrInvalidDeadlines)

	_, err = env.Matches.Manual(ctx, ManualMatchInput{
		ClubID: club.ID, Name: "Bounds", Location: "Pitch", StartTime: start,
		MinParticipants: intPtr(12), MaxParticipants: intPtr(11),
	})
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestMatchService_UpdateTransitions(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	ctx := context.Background()
	start := seasonStart.AddDate(0, 0, 20)

	m, err := env.Matches.Manual(ctx, ManualMatchInput{ClubID: club.ID, Name: "Weekly", Location: "Pitch", StartTime: start})
	require.NoError(t, err)

	closed := constants.MatchClosed
	m, err = env.Matches.Update(ctx, m.ID, UpdateMatchInput{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, constants.MatchClosed, m.Status)

	m, err = env.Matches.Update(ctx, m.ID, UpdateMatchInput{ClearSoftDeadline: true})
	require.NoError(t, err)
	assert.Nil(t, m.SoftDeadlineAt)

	cancelled := constants.MatchCancelled
	_, err = env.Matches.Update(ctx, m.ID, UpdateMatchInput{Status: &cancelled})
	require.NoError(t, err)

	recruiting := constants.MatchRecruiting
	_, err = env.Matches.Update(ctx, m.ID, UpdateMatchInput{Status: &recruiting})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := env.Matches.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.MatchCancelled, stored.Status)
}

func TestMatchService_UpdateRejectsBrokenDeadlines(t *testing.T) {
	env, club, _ := setupMatchEnv(t)
	ctx := context.Background()
	start := seasonStart.AddDate(0, 0, 20)

	m, err := env.Matches.Manual(ctx, ManualMatchInput{ClubID: club.ID, Name: "Weekly", Location: "Pitch", StartTime: start})
	require.NoError(t, err)

	_, err = env.Matches.Update(ctx, m.ID, UpdateMatchInput{HardDeadlineAt: timePtr(start.Add(time.Hour))})
	assert.ErrorIs(t, err, ErrInvalidDeadlines)

	_, err = env.Matches.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
