package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	OrderRef     string    `json:"order_ref"`
	RequesterID  string    `json:"requester_id"`
	ShowID       string    `json:"show_id"`
	MovieTitle   string    `json:"movie_title"`
	TheatreName  string    `json:"theatre_name"`
	CityName     string    `json:"city_name"`
	ShowStartsAt time.Time `json:"show_starts_at"`
	SeatCount    int       `json:"seat_count"`
	UnitPrice    float64   `json:"unit_price"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		OrderRef:     booking.OrderRef,
		RequesterID:  booking.RequesterID.String(),
		ShowID:       booking.ShowID.String(),
		MovieTitle:   booking.MovieTitle,
		TheatreName:  booking.TheatreName,
		CityName:     booking.CityName,
		ShowStartsAt: booking.ShowStartsAt,
		SeatCount:    booking.SeatCount,
		UnitPrice:    booking.UnitPrice,
		TotalPrice:   booking.TotalPrice(),
		CreatedAt:    booking.CreatedAt,
	}
}
