package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, log *zap.Logger) {
	// ==================== REQUESTER ROUTES ====================
	// Identity is resolved by the upstream auth layer; these routes only
	// require that a requester id was forwarded.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRequester(log))

		// POST /api/bookings - Reserve seats on a show
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Requester's booking history
		r.Get("/api/bookings", bookingHandler.GetRequesterBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireRequester(log))
		r.Use(middleware.RequireAdmin(log))

		// GET /api/admin/bookings - All bookings, newest first
		r.Get("/bookings", bookingHandler.GetAllBookings)

		// GET /api/admin/shows/{id}/bookings - Bookings of one show
		r.Get("/shows/{id}/bookings", bookingHandler.GetShowBookings)
	})
}
