package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an immutable record of one successful reservation. A row exists
// iff the matching capacity decrement was committed; the record is never
// updated or deleted. Movie/theatre/city/price are snapshotted from the show
// at booking time so history views need no further joins.
type Booking struct {
	BaseSimple
	OrderRef     string    `db:"order_ref"`
	RequesterID  uuid.UUID `db:"requester_id"`
	ShowID       uuid.UUID `db:"show_id"`
	SeatCount    int       `db:"seat_count"`
	MovieTitle   string    `db:"movie_title"`
	TheatreName  string    `db:"theatre_name"`
	CityName     string    `db:"city_name"`
	ShowStartsAt time.Time `db:"show_starts_at"`
	UnitPrice    float64   `db:"unit_price"`
}

// TotalPrice is the snapshot unit price times the booked seat count.
func (b *Booking) TotalPrice() float64 {
	return b.UnitPrice * float64(b.SeatCount)
}
