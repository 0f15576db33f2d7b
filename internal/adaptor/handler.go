package adaptor

import (
	"errors"

	"net/http"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Show    *ShowHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service, log),
		Show:    NewShowHandler(service, log),
	}
}

// respondError maps the error taxonomy to HTTP statuses. The sentinel kinds
// let callers branch without parsing messages.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrFatalInconsistency):
		// Must never be silently absorbed; the error log is the
		// operator-visible channel.
		log.Error("Fatal capacity inconsistency during "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Capacity accounting error, operator attention required")

	case errors.Is(err, repository.ErrInvalidArgument):
		log.Warn(operation+" rejected - invalid argument", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, repository.ErrInsufficientCapacity):
		log.Info(operation+" rejected - insufficient capacity", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	case errors.Is(err, repository.ErrStoreUnavailable):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Service temporarily unavailable, please retry")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
