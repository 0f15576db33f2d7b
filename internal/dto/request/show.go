package request

type RegisterShowRequest struct {
	MovieTitle  string  `json:"movie_title" validate:"required"`
	TheatreName string  `json:"theatre_name" validate:"required"`
	CityName    string  `json:"city_name" validate:"required"`
	StartsAt    string  `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Price       float64 `json:"price" validate:"required,min=0"`
	TotalSeats  int     `json:"total_seats" validate:"required,min=1"`
}

// ShowFilterRequest carries the optional catalog query criteria. Date is a
// calendar day (YYYY-MM-DD).
type ShowFilterRequest struct {
	City    string `json:"city"`
	Theatre string `json:"theatre"`
	Movie   string `json:"movie"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
