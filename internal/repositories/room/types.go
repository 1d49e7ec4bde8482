package room

import "github.com/aimafia/coordinator/internal/models"

// SaveRoomInput contains parameters for saving a room
type SaveRoomInput struct {
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	RoomID string
}

// DeleteRoomInput contains parameters for deleting a room
type DeleteRoomInput struct {
	RoomID string
}

// ListOpenRoomsOutput contains the result of listing lobby-phase rooms
type ListOpenRoomsOutput struct {
	Rooms []*models.Room
}
