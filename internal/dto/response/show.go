package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type ShowResponse struct {
	ID             string    `json:"id"`
	MovieTitle     string    `json:"movie_title"`
	TheatreName    string    `json:"theatre_name"`
	CityName       string    `json:"city_name"`
	StartsAt       time.Time `json:"starts_at"`
	Price          float64   `json:"price"`
	RemainingSeats int       `json:"remaining_seats"`
}

// AvailabilityResponse is the display hint for one show. The value may lag
// behind concurrent bookings; the booking call re-validates.
type AvailabilityResponse struct {
	ShowID         string `json:"show_id"`
	RemainingSeats int    `json:"remaining_seats"`
}

func ShowToResponse(show *entity.Show, remaining int) ShowResponse {
	return ShowResponse{
		ID:             show.ID.String(),
		MovieTitle:     show.MovieTitle,
		TheatreName:    show.TheatreName,
		CityName:       show.CityName,
		StartsAt:       show.StartsAt,
		Price:          show.Price,
		RemainingSeats: remaining,
	}
}
