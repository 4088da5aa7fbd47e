package booking

import (
	"context"

	"hallbooking/internal/domain"
)

// roomNameNotFound is rendered in joined views when a booking's room id no
// longer resolves. Rooms are never deleted, so this is a defensive fallback
// rather than an expected state; a dangling row must not abort the rows
// around it.
const roomNameNotFound = "Room not found"

// statusConfirmed is the only booking status in the model: there is no
// cancellation, so every stored booking is implicitly confirmed.
const statusConfirmed = "Confirmed"

type Service struct {
	bookings BookingRepository
	rooms    RoomDirectory
}

func NewService(bookings BookingRepository, rooms RoomDirectory) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// CreateBooking admits a reservation if all fields are present, the room
// exists and the interval does not collide with an existing booking on the
// same room and date. The conflict check itself lives in the repository so
// it shares one critical section with the insert.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if req.EndTime == "" {
		missing = append(missing, "endTime")
	}
	if req.RoomID == 0 {
		missing = append(missing, "roomId")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	_, ok, err := s.rooms.FindRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomNotFound
	}

	b := &domain.Booking{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		RoomID:       req.RoomID,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

// RoomsWithBookings reports every room in catalog order together with its
// bookings. Rooms without bookings still appear, with booked=false and an
// empty list rather than null.
func (s *Service) RoomsWithBookings(ctx context.Context) ([]RoomWithBookings, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoomWithBookings, 0, len(rooms))
	for _, room := range rooms {
		bs, err := s.bookings.GetByRoomID(ctx, room.ID)
		if err != nil {
			return nil, err
		}

		summaries := make([]BookingSummary, 0, len(bs))
		for _, b := range bs {
			summaries = append(summaries, BookingSummary{
				CustomerName: b.CustomerName,
				Date:         b.Date,
				StartTime:    b.StartTime,
				EndTime:      b.EndTime,
				BookingID:    b.ID,
			})
		}

		out = append(out, RoomWithBookings{
			Room:     room,
			Booked:   len(bs) > 0,
			Bookings: summaries,
		})
	}
	return out, nil
}

// CustomersWithBookings lists every booking in insertion order joined to
// its room's name.
func (s *Service) CustomersWithBookings(ctx context.Context) ([]CustomerBookingView, error) {
	bs, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CustomerBookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, s.joinRoom(ctx, b))
	}
	return out, nil
}

// CustomerHistory returns the bookings of one customer, matched by exact
// case-sensitive name. Zero matches is a NoBookingsError, not an empty
// list: history for an unknown customer is meaningless, not merely empty.
func (s *Service) CustomerHistory(ctx context.Context, customerName string) ([]CustomerHistoryEntry, error) {
	bs, err := s.bookings.GetByCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, &NoBookingsError{CustomerName: customerName}
	}

	out := make([]CustomerHistoryEntry, 0, len(bs))
	for _, b := range bs {
		out = append(out, CustomerHistoryEntry{
			CustomerBookingView: s.joinRoom(ctx, b),
			BookingDate:         b.Date,
			BookingStatus:       statusConfirmed,
		})
	}
	return out, nil
}

func (s *Service) joinRoom(ctx context.Context, b domain.Booking) CustomerBookingView {
	roomName := roomNameNotFound
	if room, ok, err := s.rooms.FindRoom(ctx, b.RoomID); err == nil && ok {
		roomName = room.Name
	}
	return CustomerBookingView{
		CustomerName: b.CustomerName,
		RoomName:     roomName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		BookingID:    b.ID,
	}
}
