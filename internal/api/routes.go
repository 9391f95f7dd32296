package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware() {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/world", handler.GetWorld)

		r.Route("/screens/{x}/{y}", func(r chi.Router) {
			r.Get("/", handler.GetScreen)

			// Battle resolver hooks
			r.Post("/enemies/{idx}/defeat", handler.DefeatEnemy)
			r.Post("/enemies/{idx}/reset", handler.ResetEnemy)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", handler.CreateSession)
			r.Post("/{id}/move", handler.MoveSession)
			r.Get("/{id}/viewport", handler.GetViewport)
		})
	})

	return r
}
