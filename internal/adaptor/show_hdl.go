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

type ShowHandler struct {
	reservation usecase.ReservationService
	catalog     usecase.CatalogService
	log         *zap.Logger
}

func NewShowHandler(service *usecase.Service, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		reservation: service.Reservation,
		catalog:     service.Catalog,
		log:         log.With(zap.String("handler", "show")),
	}
}

// SearchShows handles GET /api/shows (public)
func (h *ShowHandler) SearchShows(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ShowFilterRequest{
		City:    query.Get("city"),
		Theatre: query.Get("theatre"),
		Movie:   query.Get("movie"),
		Date:    query.Get("date"),
	}

	shows, err := h.catalog.SearchShows(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "search shows")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// GetAvailability handles GET /api/shows/{id}/availability (public)
func (h *ShowHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	availability, err := h.reservation.RemainingSeats(r.Context(), showID)
	if err != nil {
		respondError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// ==================== ADMIN METHODS ====================

// RegisterShow handles POST /api/admin/shows (admin only)
func (h *ShowHandler) RegisterShow(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.reservation.RegisterShow(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "register show")
		return
	}

	utils.ResponseCreated(w, "success", show)
}
