package booking

import (
	"context"

	"hallbooking/internal/domain"
)

// BookingRepository defines the booking store operations the scheduler
// needs. Create must perform its conflict check and the insert atomically.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByRoomID(ctx context.Context, roomID int64) ([]domain.Booking, error)
	GetByCustomer(ctx context.Context, customerName string) ([]domain.Booking, error)
}

// RoomDirectory is the slice of the catalog the scheduler consumes: room
// existence checks on create and room name resolution in joined views.
type RoomDirectory interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	FindRoom(ctx context.Context, id int64) (domain.Room, bool, error)
}
