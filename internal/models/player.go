package models

// Role is the game role dealt to a player when the room starts
type Role string

const (
	// RoleUnassigned is the role of every player while the room is in the lobby
	RoleUnassigned Role = ""

	// RoleCivilian is a red-team player with no special ability
	RoleCivilian Role = "civilian"

	// RoleCommissar is the red-team player who may check a seat's color each night
	RoleCommissar Role = "commissar"

	// RoleMafia is a black-team shooter
	RoleMafia Role = "mafia"

	// RoleDon is the black-team leader who may check seats for the commissar
	RoleDon Role = "don"
)

// IsBlack reports whether the role belongs to the mafia faction
func (r Role) IsBlack() bool {
	return r == RoleMafia || r == RoleDon
}

// Valid reports whether the role is one of the dealt roles
func (r Role) Valid() bool {
	switch r {
	case RoleCivilian, RoleCommissar, RoleMafia, RoleDon:
		return true
	}
	return false
}

// PlayerState represents the current state of a player within a room
type PlayerState string

const (
	// PlayerStateNotReady indicates a lobby member who has not confirmed readiness
	PlayerStateNotReady PlayerState = "not_ready"

	// PlayerStateReady indicates a lobby member waiting for the game to start
	PlayerStateReady PlayerState = "ready"

	// PlayerStateAlive indicates a living player in an active game
	PlayerStateAlive PlayerState = "alive"

	// PlayerStatePreDead indicates a player eliminated this night who still
	// gets a last-words turn before the death is announced
	PlayerStatePreDead PlayerState = "pre_dead"

	// PlayerStateDead indicates an eliminated player
	PlayerStateDead PlayerState = "dead"
)

// Valid reports whether the state is a member of the closed state set
func (s PlayerState) Valid() bool {
	switch s {
	case PlayerStateNotReady, PlayerStateReady, PlayerStateAlive, PlayerStatePreDead, PlayerStateDead:
		return true
	}
	return false
}

// Player represents one user's participation in a room. Players exist only
// nested inside their Room document.
type Player struct {
	// UserID references the owning User record
	UserID string

	// Nickname is copied from the user record at join time
	Nickname string

	// Role is dealt at game start and never reassigned afterwards
	Role Role

	// State is the player's lifecycle state within the room
	State PlayerState

	// Seat is the public player number, 1..N, assigned at game start
	Seat int

	// SessionHandle is the opaque id used to route notifications back to
	// this player's conversational session
	SessionHandle string

	// ChatID is the chat the dialogue layer should message for this player.
	// Opaque to the coordinator.
	ChatID int64

	// ShotVotes accumulates black-team shots aimed at this player during
	// the current night. Reset on every night resolution.
	ShotVotes int

	// HasShot marks a black-team player who already fired this night.
	// A shooter gets exactly one shot per night. Reset on every night
	// resolution.
	HasShot bool
}
