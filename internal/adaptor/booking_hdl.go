package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	reservation usecase.ReservationService
	history     usecase.HistoryService
	log         *zap.Logger
}

func NewBookingHandler(service *usecase.Service, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		reservation: service.Reservation,
		history:     service.History,
		log:         log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (requester)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetRequesterIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Requester identity required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.reservation.Book(r.Context(), requesterID.String(), &req)
	if err != nil {
		respondError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetRequesterBookings handles GET /api/bookings (requester)
func (h *BookingHandler) GetRequesterBookings(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetRequesterIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Requester identity required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.history.GetRequesterBookings(r.Context(), requesterID.String(), req)
	if err != nil {
		respondError(w, h.log, err, "get requester bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ==================== ADMIN METHODS ====================

// GetAllBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.history.GetAllBookings(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetShowBookings handles GET /api/admin/shows/{id}/bookings (admin only)
func (h *BookingHandler) GetShowBookings(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	bookings, err := h.history.GetShowBookings(r.Context(), showID)
	if err != nil {
		respondError(w, h.log, err, "get show bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
