package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/floobyte/site-api/internal/infra/http/handlers"
	"github.com/floobyte/site-api/internal/infra/http/middleware"
)

type routerDeps struct {
	allowedOrigins string
	requireAuth    func(next http.Handler) http.Handler
	intakeLimiter  *middleware.RateLimiter

	health       *handlers.HealthHandler
	auth         *handlers.AuthHandler
	posts        *handlers.PostHandler
	projects     *handlers.ProjectHandler
	services     *handlers.ServiceHandler
	careers      *handlers.CareerHandler
	badges       *handlers.BadgeHandler
	reviews      *handlers.ReviewHandler
	messages     *handlers.MessageHandler
	applications *handlers.ApplicationHandler
	leads        *handlers.LeadHandler
	settings     *handlers.SettingHandler
	stats        *handlers.StatsHandler
}

func newRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(deps.allowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", deps.health.Live)
		r.Get("/health/db", deps.health.DB)

		r.Post("/auth/login", deps.auth.Login)
		r.Post("/auth/logout", deps.auth.Logout)
		r.Get("/auth/status", deps.auth.Status)

		r.Get("/posts", deps.posts.List)
		r.Get("/posts/{id}", deps.posts.Get)
		r.Get("/posts/slug/{slug}", deps.posts.GetBySlug)
		r.Post("/posts/{id}/view", deps.posts.RecordView)

		r.Get("/projects", deps.projects.List)
		r.Get("/projects/{id}", deps.projects.Get)
		r.Get("/services", deps.services.List)
		r.Get("/services/{id}", deps.services.Get)
		r.Get("/careers", deps.careers.List)
		r.Get("/careers/{id}", deps.careers.Get)
		r.Get("/reviews", deps.reviews.List)
		r.Get("/badges", deps.badges.List)
		r.Get("/settings/{key}", deps.settings.Get)

		// Public intake, rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(deps.intakeLimiter.Handler)
			r.Post("/messages", deps.messages.Create)
			r.Post("/applications", deps.applications.Create)
			r.Post("/leads", deps.leads.Create)
		})

		// Admin surface.
		r.Group(func(r chi.Router) {
			r.Use(deps.requireAuth)

			r.Post("/posts", deps.posts.Create)
			r.Put("/posts/{id}", deps.posts.Update)
			r.Delete("/posts/{id}", deps.posts.Delete)

			r.Post("/projects", deps.projects.Create)
			r.Put("/projects/{id}", deps.projects.Update)
			r.Delete("/projects/{id}", deps.projects.Delete)

			r.Post("/services", deps.services.Create)
			r.Put("/services/{id}", deps.services.Update)
			r.Delete("/services/{id}", deps.services.Delete)

			r.Post("/careers", deps.careers.Create)
			r.Put("/careers/{id}", deps.careers.Update)
			r.Delete("/careers/{id}", deps.careers.Delete)

			r.Post("/badges", deps.badges.Create)
			r.Put("/badges/{id}", deps.badges.Update)
			r.Delete("/badges/{id}", deps.badges.Delete)

			r.Post("/reviews", deps.reviews.Create)
			r.Delete("/reviews/{id}", deps.reviews.Delete)
			r.Post("/reviews/sync", deps.reviews.Sync)

			r.Get("/messages", deps.messages.List)
			r.Get("/messages/{id}", deps.messages.Get)
			r.Put("/messages/{id}/read", deps.messages.MarkRead)
			r.Delete("/messages/{id}", deps.messages.Delete)

			r.Get("/applications", deps.applications.List)
			r.Delete("/applications/{id}", deps.applications.Delete)

			r.Get("/leads", deps.leads.List)
			r.Get("/leads/{id}", deps.leads.Get)
			r.Put("/leads/{id}", deps.leads.Update)
			r.Delete("/leads/{id}", deps.leads.Delete)

			r.Put("/settings/{key}", deps.settings.Set)
			r.Get("/stats", deps.stats.Get)
		})
	})

	return r
}
