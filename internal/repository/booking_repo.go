package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hallbooking/internal/domain"
)

// ErrConflict is returned when a booking would overlap an existing one on
// the same room and date.
var ErrConflict = errors.New("booking conflict")

// ConflictError carries the booking the candidate collided with.
type ConflictError struct {
	Existing domain.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already booked on %s from %s to %s",
		e.Existing.RoomID, e.Existing.Date, e.Existing.StartTime, e.Existing.EndTime)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// BookingRepository keeps all bookings in memory, in insertion order.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	nextID   int64
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create scans for a conflicting booking and, if the slot is free, assigns
// the next id and appends. Check and insert run inside one critical
// section: two racing creates for the same slot serialize here, and the
// loser sees the winner's row. Nothing is committed on the error path.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.Overlaps(b.RoomID, b.Date, b.StartTime, b.EndTime) {
			return &ConflictError{Existing: existing}
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

// GetAll returns every booking in insertion order.
func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// GetByRoomID returns the bookings that reference the given room.
func (r *BookingRepository) GetByRoomID(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetByCustomer returns the bookings whose customer name matches exactly.
// Matching is case-sensitive: "john" and "John" are different customers.
func (r *BookingRepository) GetByCustomer(ctx context.Context, customerName string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Booking
	for _, b := range r.bookings {
		if b.CustomerName == customerName {
			out = append(out, b)
		}
	}
	return out, nil
}
