package server

import (
	"net/http"

	"survey-backend/internal/handlers"
	customMiddleware "survey-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the survey API and health check behind the global middleware stack.
func NewRouter(survey *handlers.SurveyHandler, health *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/health", health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Get("/responses", survey.ListResponses)
		r.Post("/submit-pre-survey", survey.SubmitPreSurvey)
		r.Post("/submit-survey", survey.SubmitSurvey)
		r.Post("/submit-post-survey", survey.SubmitPostSurvey)
	})

	return r
}
