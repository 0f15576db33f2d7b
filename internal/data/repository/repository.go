package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Show    ShowRepository
	Ledger  CapacityLedger
	Booking BookingRepository
}

// NewRepository wires the Postgres-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Show:    NewShowRepository(db, log),
		Ledger:  NewCapacityLedger(db, log),
		Booking: NewBookingRepository(db, log),
	}
}

// NewMemoryRepository wires the in-process repositories, used by tests and
// by local runs without a database.
func NewMemoryRepository() *Repository {
	return &Repository{
		Show:    NewMemoryShowRepository(),
		Ledger:  NewMemoryCapacityLedger(),
		Booking: NewMemoryBookingRepository(),
	}
}
