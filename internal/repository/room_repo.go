package repository

import (
	"context"
	"sync"

	"hallbooking/internal/domain"
)

// RoomRepository keeps the room catalog in memory. State lives for the
// process lifetime only; the data model is append-only so no row is ever
// updated or removed.
type RoomRepository struct {
	mu     sync.RWMutex
	rooms  []domain.Room
	nextID int64
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// Create assigns the next id and appends the room. The counter is monotonic
// and advances under the same lock as the append, so concurrent creates can
// neither collide on an id nor observe a half-inserted catalog.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	room.ID = r.nextID
	r.rooms = append(r.rooms, *room)
	return nil
}

// GetAll returns every room in creation order.
func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}

// GetByID looks a room up by id. Absence is not an error at this layer;
// callers decide whether a missing room is fatal.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (domain.Room, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.ID == id {
			return room, true, nil
		}
	}
	return domain.Room{}, false, nil
}
