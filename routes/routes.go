package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Dosada05/club-manager/handlers"
	"github.com/Dosada05/club-manager/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clubHandler *handlers.ClubHandler,
	teamHandler *handlers.TeamHandler,
	eventHandler *handlers.EventHandler,
	statsHandler *handlers.StatsHandler,
	chatHandler *handlers.ChatHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)
	router.Get("/ws/teams/{teamID}", webSocketHandler.ServeWs)

	// Публичные справочные маршруты.
	router.Route("/clubs/{clubID}", func(r chi.Router) {
		r.Get("/", clubHandler.GetClub)
		r.Get("/teams", clubHandler.ListTeams)
		r.Get("/standings", statsHandler.GetClubStandings)
		r.Get("/announcements", clubHandler.ListAnnouncements)
		r.Get("/bookings", clubHandler.ListBookings)
		r.Get("/news", clubHandler.ListNews)
	})

	router.Route("/teams/{teamID}", func(r chi.Router) {
		r.Get("/", teamHandler.GetTeam)
		r.Get("/players", teamHandler.ListPlayers)
		r.Get("/events", teamHandler.ListEvents)
		r.Get("/record", statsHandler.GetTeamRecord)
		r.Get("/tallies", statsHandler.GetPlayerTallies)
		r.Get("/top-scorers", statsHandler.GetTopScorers)
		r.Get("/top-assisters", statsHandler.GetTopAssisters)
		r.Get("/trends", statsHandler.GetTrends)
	})

	router.Get("/users/{userID}", userHandler.GetUser)
	router.Get("/users/{userID}/children", userHandler.ListChildren)
	router.Get("/players/{playerID}", userHandler.GetPlayer)
	router.Get("/events/{eventID}", eventHandler.Get)
	router.Post("/events/{eventID}/attendance/summary", eventHandler.AttendanceSummary)

	// Маршруты, требующие токен. Роль при этом не проверяется:
	// токен даёт личность (created_by / marked_by), не права.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(jwtSecret)))

		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/session", authHandler.Session)
		r.Post("/auth/onboarding", authHandler.CompleteOnboarding)

		r.Get("/dashboard", dashboardHandler.Get)
		r.Get("/users/{userID}/chats", userHandler.ListChats)
		r.Get("/chats/{chatID}/messages", chatHandler.ListMessages)

		r.Post("/events", eventHandler.Create)
		r.Put("/events/{eventID}/attendance", eventHandler.SaveAttendance)
		r.Post("/events/{eventID}/attendance/present-all", eventHandler.MarkAllPending)
		r.Put("/events/{eventID}/result", eventHandler.SubmitResult)
	})
}
