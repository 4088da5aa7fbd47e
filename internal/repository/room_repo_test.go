package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbooking/internal/domain"
)

func TestRoomRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		room := &domain.Room{Name: "Room", SeatsAvailable: 10, PricePerHour: 50}
		require.NoError(t, repo.Create(ctx, room))
		assert.Equal(t, int64(i), room.ID)
	}
}

func TestRoomRepository_ConcurrentCreatesYieldUniqueIDs(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			room := &domain.Room{Name: "Room", SeatsAvailable: 5, PricePerHour: 10}
			if err := repo.Create(ctx, room); err == nil {
				ids <- room.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestRoomRepository_GetAllReturnsCreationOrder(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, &domain.Room{Name: name, SeatsAvailable: 2, PricePerHour: 1}))
	}

	rooms, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	for i, name := range names {
		assert.Equal(t, name, rooms[i].Name)
	}
}

func TestRoomRepository_GetByID(t *testing.T) {
	repo := NewRoomRepository()
	ctx := context.Background()

	room := &domain.Room{Name: "MeetingRoom1", SeatsAvailable: 50, PricePerHour: 50}
	require.NoError(t, repo.Create(ctx, room))

	got, ok, err := repo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "MeetingRoom1", got.Name)

	_, ok, err = repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
