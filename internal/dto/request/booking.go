package request

type CreateBookingRequest struct {
	ShowID    string `json:"show_id" validate:"required,uuid4"`
	SeatCount int    `json:"seat_count" validate:"required,min=1"`
}
