package seed

import (
	"context"
	"fmt"

	"hallbooking/internal/modules/booking"
	"hallbooking/internal/modules/catalog"
)

// Demo loads the demo catalog and bookings the original service shipped
// with. Only meant for local development; a fresh process starts empty
// unless SEED_DEMO_DATA is set.
func Demo(ctx context.Context, catalogSvc *catalog.Service, bookingSvc *booking.Service) error {
	rooms := []catalog.CreateRoomRequest{
		{RoomName: "MeetingRoom1", SeatsAvailable: 50, Amenities: []string{"Wi-Fi", "Projector"}, PricePerHour: 50.0},
		{RoomName: "MeetingRoom2", SeatsAvailable: 20, Amenities: []string{"Wi-Fi", "Projector"}, PricePerHour: 80.0},
		{RoomName: "MeetingRoom3", SeatsAvailable: 20, Amenities: []string{"Wi-Fi", "Projector"}, PricePerHour: 100.0},
	}

	for _, req := range rooms {
		if _, err := catalogSvc.CreateRoom(ctx, req); err != nil {
			return fmt.Errorf("seed room %q: %w", req.RoomName, err)
		}
	}

	// dates are stored verbatim, malformed ones included
	bookings := []booking.CreateBookingRequest{
		{CustomerName: "John Doe", Date: "2023-12-31", StartTime: "14:00", EndTime: "16:00", RoomID: 1},
		{CustomerName: "John", Date: "2023-13-31", StartTime: "14:00", EndTime: "16:00", RoomID: 2},
		{CustomerName: "Johnny", Date: "2023-14-31", StartTime: "14:00", EndTime: "16:00", RoomID: 3},
	}

	for _, req := range bookings {
		if _, err := bookingSvc.CreateBooking(ctx, req); err != nil {
			return fmt.Errorf("seed booking for %q: %w", req.CustomerName, err)
		}
	}

	return nil
}
