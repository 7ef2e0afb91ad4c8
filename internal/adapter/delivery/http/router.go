// Package http provides the HTTP delivery layer for the alias registry.
// This package contains the HTTP handlers and related types used for
// processing incoming requests, validating input, and formatting responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes and returns a new Chi router configured with
// middleware and routes for the alias registry API. The base URL is used to
// build the short URLs returned in responses.
func NewRouter(logger *httplog.Logger, useCase linkUseCase, baseURL string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := validator.New()
	h := newLinkHandler(useCase, validate, baseURL)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Get("/ping", handlePing)
		r.Get("/stats", h.stats)

		r.Route("/shorten", func(r chi.Router) {
			r.Post("/", h.shorten)
			r.Get("/", h.list)
			r.Get("/{alias}", h.resolve)
		})
	})

	r.Get("/{alias}", h.redirect)

	return r
}
