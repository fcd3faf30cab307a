package routes

import (
	"football-club/matchday/internal/api"
	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, jobsHandler *api.JobsHandler, tokens *auth.TokenService, voteLimiter *middleware.RateLimiter) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(tokens)) // global: all routes must be authenticated

		// Member routes
		v1.Group(func(member chi.Router) {
			member.Use(middleware.IsMemberMiddleware())

			member.With(voteLimiter.Middleware).Post("/matches/{matchID}/vote", handlers.Vote())
			member.Get("/matches/{matchID}/me", handlers.GetMyVote())
			member.Get("/matches/{matchID}", handlers.GetMatch())
			member.Get("/participations/me", handlers.ListMyParticipations())
			member.Get("/clubs/{clubID}/matches", handlers.ListUpcomingMatches())
			member.Put("/members/{memberID}/chat-token", handlers.SetChatToken())

			// Managers and admins
			member.Group(func(operator chi.Router) {
				operator.Use(middleware.IsOperatorMiddleware())

				operator.Post("/seasons", handlers.CreateSeason())
				operator.Get("/clubs/{clubID}/seasons", handlers.ListSeasons())
				operator.Get("/seasons/{seasonID}/memberships", handlers.ListMemberships())
				operator.Post("/memberships", handlers.CreateMembership())
				operator.Patch("/memberships/{membershipID}", handlers.UpdateMembership())

				operator.Post("/clubs/{clubID}/members", handlers.CreateMember())
				operator.Get("/clubs/{clubID}/members", handlers.ListMembers())

				operator.Post("/templates", handlers.CreateTemplate())
				operator.Get("/clubs/{clubID}/templates", handlers.ListTemplates())

				operator.Post("/matches/generate", handlers.GenerateMatch())
				operator.Post("/matches", handlers.CreateMatch())
				operator.Patch("/matches/{matchID}", handlers.UpdateMatch())
				operator.Get("/matches/{matchID}/participations", handlers.ListMatchParticipations())
				operator.Get("/matches/{matchID}/stats", handlers.MatchStats())
				operator.Get("/matches/{matchID}/notifications", handlers.ListMatchNotifications())
				operator.Put("/participations/override", handlers.OverrideParticipation())

				operator.Get("/notifications/preview", handlers.PreviewNotification())
				operator.Post("/notifications/generate", handlers.GenerateNotification())
				operator.Post("/notifications/{notificationID}/send", handlers.SendNotification())
				operator.Post("/notifications/{notificationID}/publish", handlers.PublishNotification())

				operator.Get("/jobs/status", jobsHandler.GetJobStatus())
				operator.Post("/jobs/deadline/run", jobsHandler.TriggerDeadlinePass())

				// Admin-only group
				operator.Group(func(admin chi.Router) {
					admin.Use(middleware.IsAdminMiddleware())

					admin.Post("/clubs", handlers.CreateClub())
					admin.Post("/jobs/membership-expiry/run", jobsHandler.TriggerMembershipExpiry())
				})
			})
		})
	})
}
