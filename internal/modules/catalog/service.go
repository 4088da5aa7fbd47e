package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hallbooking/internal/domain"
	"hallbooking/internal/repository"
)

var ErrValidation = errors.New("invalid room input")

// ValidationError lists the request fields that were missing or out of
// range so the boundary can report all of them at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid room input: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type Service struct {
	rooms *repository.RoomRepository
}

func NewService(rooms *repository.RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	var bad []string
	if req.RoomName == "" {
		bad = append(bad, "roomName")
	}
	if req.SeatsAvailable <= 0 {
		bad = append(bad, "seatsAvailable")
	}
	if req.PricePerHour < 0 {
		bad = append(bad, "pricePerHour")
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	room := &domain.Room{
		Name:           req.RoomName,
		SeatsAvailable: req.SeatsAvailable,
		Amenities:      req.Amenities,
		PricePerHour:   req.PricePerHour,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

// FindRoom resolves a room id. The booking scheduler depends on this for
// existence checks and for enriching its joined views.
func (s *Service) FindRoom(ctx context.Context, id int64) (domain.Room, bool, error) {
	return s.rooms.GetByID(ctx, id)
}
