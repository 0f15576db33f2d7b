package entity

import (
	"time"

	"github.com/google/uuid"
)

// Show is a scheduled screening. Display fields (movie/theatre/city) are
// denormalized at registration time; the catalog itself is managed outside
// this service. Capacity lives in ShowCapacity, owned by the ledger.
type Show struct {
	Base
	MovieTitle  string    `db:"movie_title"`
	TheatreName string    `db:"theatre_name"`
	CityName    string    `db:"city_name"`
	StartsAt    time.Time `db:"starts_at"`
	Price       float64   `db:"price"`
}

// ShowCapacity is one ledger row per show. TotalSeats is immutable after
// registration; RemainingSeats only changes through TryReserve/Release.
type ShowCapacity struct {
	ShowID         uuid.UUID `db:"show_id"`
	TotalSeats     int       `db:"total_seats"`
	RemainingSeats int       `db:"remaining_seats"`
}
