package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/shows - Catalog query by city/theatre/movie/date
	r.Get("/api/shows", showHandler.SearchShows)

	// GET /api/shows/{id}/availability - Remaining seats display hint
	r.Get("/api/shows/{id}/availability", showHandler.GetAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRequester(log))
		r.Use(middleware.RequireAdmin(log))

		// POST /api/admin/shows - Register a show and its capacity
		r.Post("/api/admin/shows", showHandler.RegisterShow)
	})
}
