package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/authgate-dev/authgate/internal/middleware"
	"github.com/authgate-dev/authgate/internal/middleware/metrics"
	"github.com/authgate-dev/authgate/internal/setup"
)

// New creates and configures the router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestId)
	r.Use(metrics.Middleware)

	origins := deps.Config.Public.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:8081"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login/credentials", h.Login)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/logout", h.Logout)
			r.With(middleware.NeedAuth(deps.Jwt)).Get("/me", h.Me)
		})
	})

	return r
}
