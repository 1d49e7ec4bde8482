package room

import "errors"

// Define errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is at maximum capacity")
	ErrPlayerNotFound    = errors.New("player not found in room")
	ErrInvalidRoomPhase  = errors.New("operation not valid in current room phase")
	ErrInvalidState      = errors.New("invalid player state")
	ErrNotEnoughPlayers  = errors.New("room does not have enough players")
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilRoomRepo       = errors.New("room repository cannot be nil")
	ErrNilUserRepo       = errors.New("user repository cannot be nil")
	ErrNilRoomLocks      = errors.New("room locks cannot be nil")
	ErrNilShuffler       = errors.New("shuffler cannot be nil")
	ErrNilClock          = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator  = errors.New("UUID generator cannot be nil")
	ErrInvalidRoomSize   = errors.New("room size must allow the role distribution")
)
