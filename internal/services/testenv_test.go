package services

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/db/repositories"
	models "football-club/matchday/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t.UTC()} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

type mockSender struct {
	mu           sync.Mutex
	sendTextFunc func(ctx context.Context, recipientToken, text string) error
	sent         []string
}

func (m *mockSender) SendText(ctx context.Context, recipientToken, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendTextFunc != nil {
		if err := m.sendTextFunc(ctx, recipientToken, text); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, text)
	return nil
}

type recordedEvent struct {
	Type    constants.EventType
	Payload interface{}
}

type mockPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (m *mockPublisher) Publish(ctx context.Context, eventType constants.EventType, payload interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, recordedEvent{Type: eventType, Payload: payload})
	return nil
}

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	t.Helper()

	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "failed to migrate")
	return db
}

// testEnv wires every service against one in-memory database.
type testEnv struct {
	db    *gormlib.DB
	clock *fakeClock

	clubRepo          *repositories.ClubRepo
	memberRepo        *repositories.MemberRepo
	seasonRepo        *repositories.SeasonRepo
	membershipRepo    *repositories.MembershipRepo
	templateRepo      *repositories.MatchTemplateRepo
	matchRepo         *repositories.MatchRepo
	participationRepo *repositories.ParticipationRepo
	notificationRepo  *repositories.NotificationRepo

	Clubs          *ClubService
	Seasons        *SeasonService
	Memberships    *MembershipService
	Matches        *MatchService
	Participations *ParticipationService
	Generator      *ContentGenerator
	Notifications  *NotificationService

	sender    *mockSender
	publisher *mockPublisher
}

var seoul = mustLoad("Asia/Seoul")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	env := &testEnv{
		db:                db,
		clock:             newFakeClock(now),
		clubRepo:          repositories.NewClubRepo(db),
		memberRepo:        repositories.NewMemberRepo(db),
		seasonRepo:        repositories.NewSeasonRepo(db),
		membershipRepo:    repositories.NewMembershipRepo(db),
		templateRepo:      repositories.NewMatchTemplateRepo(db),
		matchRepo:         repositories.NewMatchRepo(db),
		participationRepo: repositories.NewParticipationRepo(db),
		notificationRepo:  repositories.NewNotificationRepo(db),
		sender:            &mockSender{},
		publisher:         &mockPublisher{},
	}

	audience := repositories.NewAudienceRepo(sqlx.NewDb(sqlDB, "sqlite3"))

	env.Clubs = NewClubService(env.clubRepo, env.memberRepo)
	env.Seasons = NewSeasonService(env.seasonRepo)
	env.Memberships = NewMembershipService(env.membershipRepo, env.seasonRepo, env.memberRepo, env.clock)
	env.Matches = NewMatchService(env.matchRepo, env.templateRepo, env.Seasons, env.clock)
	env.Participations = NewParticipationService(env.matchRepo, env.membershipRepo, env.participationRepo, env.clock)
	env.Generator = NewContentGenerator(audience, seoul, "https://club.example/vote")
	env.Notifications = NewNotificationService(env.notificationRepo, env.matchRepo, env.memberRepo, env.Generator, env.sender, env.publisher, env.clock)
	return env
}

func (e *testEnv) club(t *testing.T, name string) *models.Club {
	t.Helper()
	c, err := e.Clubs.CreateClub(context.Background(), name, nil)
	require.NoError(t, err)
	return c
}

func (e *testEnv) member(t *testing.T, clubID, name string) *models.Member {
	t.Helper()
	m, err := e.Clubs.CreateMember(context.Background(), CreateMemberInput{
		ClubID: clubID, ExternalID: "ext-" + name + "-" + clubID, Name: name,
	})
	require.NoError(t, err)
	return m
}

func (e *testEnv) season(t *testing.T, clubID, name string, start, end time.Time) *models.Season {
	t.Helper()
	s, err := e.Seasons.Create(context.Background(), CreateSeasonInput{ClubID: clubID, Name: name, StartAt: start, EndAt: end})
	require.NoError(t, err)
	return s
}

func (e *testEnv) activeMembership(t *testing.T, memberID, seasonID string) *models.Membership {
	t.Helper()
	ms, err := e.Memberships.Create(context.Background(), CreateMembershipInput{
		MemberID: memberID, SeasonID: seasonID,
		Type: constants.MembershipRegular, Status: constants.MembershipActive,
	})
	require.NoError(t, err)
	return ms
}

// match creates a manual match with explicit deadlines.
func (e *testEnv) match(t *testing.T, clubID string, start, polling time.Time, soft *time.Time, hard time.Time) *models.Match {
	t.Helper()
	m := &models.Match{
		ClubID: clubID, Name: "Sunday League", Location: "Riverside Pitch",
		StartTime: start, EndTime: start.Add(2 * time.Hour),
		PollingStartAt: polling, SoftDeadlineAt: soft, HardDeadlineAt: hard,
		MinParticipants: 10, MaxParticipants: 22,
		Status: constants.MatchRecruiting,
	}
	season, err := e.Seasons.Resolve(context.Background(), clubID, start, nil)
	require.NoError(t, err)
	m.SeasonID = season.ID
	require.NoError(t, e.matchRepo.Create(context.Background(), m))
	return m
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
