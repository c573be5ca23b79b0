package routes

import (
	"net/http"

	_ "github.com/Dosada05/tournament-day/docs"
	"github.com/Dosada05/tournament-day/handlers"
	"github.com/Dosada05/tournament-day/middleware"
	"github.com/Dosada05/tournament-day/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	// RoundLimiter throttles round generation. Nil disables throttling.
	RoundLimiter *middleware.IPRateLimiter
	// Registry is served on /metrics when set.
	Registry *prometheus.Registry
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	authHandler *handlers.AuthHandler,
	roundHandler *handlers.RoundHandler,
	gameHandler *handlers.GameHandler,
	participantHandler *handlers.ParticipantHandler,
	tournamentHandler *handlers.TournamentHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", healthHandler.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if opts.Registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))
	}

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	authenticate := middleware.Authenticate(opts.JWTSecret)

	router.Post("/auth/login", authHandler.Login)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/active", tournamentHandler.GetActive)
		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/days/{dayIndex}/rounds/{roundNumber}", roundHandler.GetRound)
			r.Get("/games", gameHandler.ListGames)
			r.Get("/participants/{participantID}/current-game", gameHandler.CurrentGame)
			r.Get("/standings", standingsHandler.Standings)
			r.Get("/standings.xlsx", standingsHandler.ExportXLSX)
		})
	})

	router.With(authenticate).Post("/games/{gameID}/submit", gameHandler.SubmitScore)

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.Authorize(services.RoleAdmin))

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", tournamentHandler.Create)
			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Post("/blackout", tournamentHandler.SetBlackout)
				r.Post("/check-in-open", tournamentHandler.SetCheckInOpen)
				r.Post("/start-all", gameHandler.StartAllUpcoming)

				generate := http.HandlerFunc(roundHandler.GenerateRound)
				if opts.RoundLimiter != nil {
					r.With(middleware.RateLimit(opts.RoundLimiter)).
						Post("/days/{dayIndex}/rounds/{roundNumber}", generate)
				} else {
					r.Post("/days/{dayIndex}/rounds/{roundNumber}", generate)
				}
			})
		})

		r.Route("/games/{gameID}", func(r chi.Router) {
			r.Put("/", gameHandler.UpdateGame)
			r.Post("/start", gameHandler.StartGame)
		})

		r.Route("/participants", func(r chi.Router) {
			r.Get("/", participantHandler.List)
			r.Post("/", participantHandler.RegisterProxy)
			r.Post("/{participantID}/check-in", participantHandler.CheckIn)
			r.Post("/{participantID}/power", participantHandler.SetPower)
		})
	})
}
