package game

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrPlayerNotFound is returned when the acting user is not a member of
	// the room
	ErrPlayerNotFound = errors.New("player not found in room")

	// ErrInvalidRoomPhase is returned when the room is not in an active game
	ErrInvalidRoomPhase = errors.New("room is not in the required phase")

	// ErrInvalidNightStage is returned when the operation does not fit the
	// current night stage
	ErrInvalidNightStage = errors.New("night is not in the required stage")

	// ErrNotBlackTeam is returned when a non-mafia player tries to shoot
	ErrNotBlackTeam = errors.New("player is not on the black team")

	// ErrAlreadyShot is returned when a shooter fires a second time within
	// the same night
	ErrAlreadyShot = errors.New("player has already shot this night")

	// ErrNotChecker is returned when a player without a check ability asks
	// for a role check
	ErrNotChecker = errors.New("player has no check ability")

	// ErrPlayerDead is returned when a dead player tries to act
	ErrPlayerDead = errors.New("player is not alive")

	// ErrInvalidSeat is returned when the target seat does not hold a living
	// player
	ErrInvalidSeat = errors.New("target seat is not a living player")

	// ErrNotPreDead is returned when last words are submitted by anyone but
	// the pending victim
	ErrNotPreDead = errors.New("player is not awaiting last words")

	// ErrVoteRestricted is returned when a re-vote round rejects a target
	// outside the tied seats
	ErrVoteRestricted = errors.New("target seat is not on the re-vote ballot")

	// ErrVotingIncomplete is returned when the day is resolved before every
	// living player has voted
	ErrVotingIncomplete = errors.New("not every living player has voted")

	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilRoomRepo is returned when no room repository is provided
	ErrNilRoomRepo = errors.New("room repository cannot be nil")

	// ErrNilUserRepo is returned when no user repository is provided
	ErrNilUserRepo = errors.New("user repository cannot be nil")

	// ErrNilRoomLocks is returned when no room lock set is provided
	ErrNilRoomLocks = errors.New("room locks cannot be nil")

	// ErrNilClock is returned when no clock is provided
	ErrNilClock = errors.New("clock cannot be nil")
)
