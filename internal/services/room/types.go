package room

import (
	"github.com/aimafia/coordinator/internal/common/clock"
	"github.com/aimafia/coordinator/internal/common/keymutex"
	"github.com/aimafia/coordinator/internal/common/uuid"
	"github.com/aimafia/coordinator/internal/models"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
	"github.com/aimafia/coordinator/internal/shuffle"
)

// Config holds configuration for the room service
type Config struct {
	// Number of players a game needs
	RoomSize int

	// Repository dependencies
	RoomRepo roomRepo.Repository
	UserRepo userRepo.Repository

	// Shared per-room lock; the same instance must be handed to every
	// service mutating rooms
	RoomLocks *keymutex.KeyMutex

	// Service dependencies
	Shuffler shuffle.Shuffler
	Clock    clock.Clock
	UUID     uuid.UUID
}

// FindOrCreateUserInput contains the chat-platform identity
type FindOrCreateUserInput struct {
	UserID   string
	Nickname string
}

// FindOrCreateUserOutput contains the resolved user
type FindOrCreateUserOutput struct {
	User    *models.User
	Created bool
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	Name string
}

// CreateRoomOutput contains the created room
type CreateRoomOutput struct {
	Room *models.Room
}

// FindRoomInput contains parameters for finding a room
type FindRoomInput struct {
	RoomID string
}

// FindRoomOutput contains the found room
type FindRoomOutput struct {
	Room *models.Room
}

// RandomOpenRoomInput contains parameters for the random room pick
type RandomOpenRoomInput struct {
}

// RandomOpenRoomOutput contains the picked room; Room is nil when no
// lobby-phase room exists
type RandomOpenRoomOutput struct {
	Room *models.Room
}

// ListOpenRoomsInput contains parameters for listing lobby-phase rooms
type ListOpenRoomsInput struct {
}

// ListOpenRoomsOutput contains every lobby-phase room
type ListOpenRoomsOutput struct {
	Rooms []*models.Room
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomID        string
	UserID        string
	Nickname      string
	SessionHandle string
	ChatID        int64
}

// JoinRoomOutput contains the room after the join
type JoinRoomOutput struct {
	Room *models.Room

	// AlreadyMember is true when the join was an idempotent no-op
	AlreadyMember bool
}

// LeaveRoomInput contains parameters for leaving a room
type LeaveRoomInput struct {
	RoomID string
	UserID string
}

// LeaveRoomOutput contains the room after the leave
type LeaveRoomOutput struct {
	Room *models.Room

	// Forfeited is true when the player left an active game and was marked
	// dead instead of being removed
	Forfeited bool

	// RoomDeleted is true when the leaver was the last lobby member and the
	// room was dissolved
	RoomDeleted bool

	// GameEnded is true when the forfeit decided the game
	GameEnded bool
}

// SetPlayerStateInput contains parameters for a readiness flip
type SetPlayerStateInput struct {
	RoomID string
	UserID string
	State  models.PlayerState
}

// SetPlayerStateOutput contains the room after the update
type SetPlayerStateOutput struct {
	Room *models.Room

	// QuorumReached reflects the lobby quorum, evaluated fresh on the
	// updated room
	QuorumReached bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	RoomID string
}

// StartGameOutput contains the room after the start
type StartGameOutput struct {
	Room *models.Room

	// AlreadyActive is true when the room had already been started and the
	// call changed nothing
	AlreadyActive bool
}
