package api

import (
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/db/repositories"
	"football-club/matchday/internal/metrics"
	"football-club/matchday/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Clubs          *repositories.ClubRepo
	Members        *repositories.MemberRepo
	Seasons        *repositories.SeasonRepo
	Memberships    *repositories.MembershipRepo
	Templates      *repositories.MatchTemplateRepo
	Matches        *repositories.MatchRepo
	Participations *repositories.ParticipationRepo
	Notifications  *repositories.NotificationRepo
	Audience       *repositories.AudienceRepo
}

type Services struct {
	Clubs          *services.ClubService
	Seasons        *services.SeasonService
	Memberships    *services.MembershipService
	Matches        *services.MatchService
	Participations *services.ParticipationService
	Generator      *services.ContentGenerator
	Notifications  *services.NotificationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Clock    services.Clock
}

// Infrastructure is everything the dependency graph needs from the process.
type Infrastructure struct {
	ORM        *gorm.DB
	SQL        *sqlx.DB
	Sender     services.Sender
	Events     services.EventPublisher
	Clock      services.Clock
	Metrics    *metrics.MetricsRegistry
	DisplayLoc *time.Location
	VoteURL    string
	// Membership types allowed to vote while their membership is PENDING.
	// Empty by default.
	EligibilityBypass []constants.MembershipType
}

func InitDependencies(infra Infrastructure) *Dependencies {
	if infra.Clock == nil {
		infra.Clock = services.SystemClock{}
	}

	repos := &Repositories{
		Clubs:          repositories.NewClubRepo(infra.ORM),
		Members:        repositories.NewMemberRepo(infra.ORM),
		Seasons:        repositories.NewSeasonRepo(infra.ORM),
		Memberships:    repositories.NewMembershipRepo(infra.ORM),
		Templates:      repositories.NewMatchTemplateRepo(infra.ORM),
		Matches:        repositories.NewMatchRepo(infra.ORM),
		Participations: repositories.NewParticipationRepo(infra.ORM),
		Notifications:  repositories.NewNotificationRepo(infra.ORM),
		Audience:       repositories.NewAudienceRepo(infra.SQL),
	}

	seasonSvc := services.NewSeasonService(repos.Seasons)
	generator := services.NewContentGenerator(repos.Audience, infra.DisplayLoc, infra.VoteURL).
		WithEligibilityBypass(infra.EligibilityBypass...)
	participationSvc := services.NewParticipationService(repos.Matches, repos.Memberships, repos.Participations, infra.Clock).
		WithEligibilityBypass(infra.EligibilityBypass...)

	svcs := &Services{
		Clubs:          services.NewClubService(repos.Clubs, repos.Members),
		Seasons:        seasonSvc,
		Memberships:    services.NewMembershipService(repos.Memberships, repos.Seasons, repos.Members, infra.Clock),
		Matches:        services.NewMatchService(repos.Matches, repos.Templates, seasonSvc, infra.Clock),
		Participations: participationSvc,
		Generator:      generator,
		Notifications:  services.NewNotificationService(repos.Notifications, repos.Matches, repos.Members, generator, infra.Sender, infra.Events, infra.Clock),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  infra.Metrics,
		Clock:    infra.Clock,
	}
}
