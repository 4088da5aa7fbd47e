package domain

// Room is a bookable meeting room. Rooms are append-only: once created they
// are never mutated or deleted, so ids stay valid for the process lifetime.
type Room struct {
	ID             int64    `json:"id"`
	Name           string   `json:"roomName" validate:"required"`
	SeatsAvailable int      `json:"seatsAvailable" validate:"required,gt=0"`
	Amenities      []string `json:"amenities"`
	PricePerHour   float64  `json:"pricePerHour" validate:"gte=0"`
}
