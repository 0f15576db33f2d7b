package usecase

import (
	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
	Catalog     CatalogService
	History     HistoryService
}

// NewService wires the use cases. hints may be nil when Redis is disabled.
func NewService(repo *repository.Repository, hints *cache.AvailabilityCache, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(repo, hints, log),
		Catalog:     NewCatalogService(repo, hints, log),
		History:     NewHistoryService(repo, log),
	}
}
