package catalog

type CreateRoomRequest struct {
	RoomName       string   `json:"roomName" validate:"required"`
	SeatsAvailable int      `json:"seatsAvailable" validate:"required,gt=0"`
	Amenities      []string `json:"amenities,omitempty"`
	PricePerHour   float64  `json:"pricePerHour" validate:"gte=0"`
}
