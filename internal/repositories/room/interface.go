package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/aimafia/coordinator/internal/repositories/room Repository

import (
	"context"

	"github.com/aimafia/coordinator/internal/models"
)

// Repository is the store adapter for room aggregates. Every mutation goes
// through a full GetRoom / SaveRoom pair; no sub-document is persisted on
// its own.
type Repository interface {
	// SaveRoom persists a room aggregate
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// GetRandomOpenRoom picks a lobby-phase room uniformly at random
	GetRandomOpenRoom(ctx context.Context) (*models.Room, error)

	// ListOpenRooms retrieves all lobby-phase rooms
	ListOpenRooms(ctx context.Context) (*ListOpenRoomsOutput, error)
}
