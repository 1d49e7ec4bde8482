package game

import (
	"github.com/aimafia/coordinator/internal/common/clock"
	"github.com/aimafia/coordinator/internal/common/keymutex"
	"github.com/aimafia/coordinator/internal/models"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	RoomRepo roomRepo.Repository
	UserRepo userRepo.Repository

	// Shared per-room lock; must be the same instance the room service uses
	RoomLocks *keymutex.KeyMutex

	// Service dependencies
	Clock clock.Clock
}

// RecordShotInput contains parameters for a night shot
type RecordShotInput struct {
	RoomID        string
	ShooterUserID string
	TargetSeat    int
}

// RecordShotOutput contains the room after the shot
type RecordShotOutput struct {
	Room *models.Room

	// AllShotsIn is true when every living black-team player has shot and
	// the night has advanced to the checking stage
	AllShotsIn bool
}

// CheckSeatInput contains parameters for a role check
type CheckSeatInput struct {
	RoomID        string
	CheckerUserID string
	TargetSeat    int
}

// CheckSeatOutput contains the check answer. Color is filled for a
// commissar check, IsCommissar for a don check.
type CheckSeatOutput struct {
	CheckerRole models.Role
	Color       models.Team
	IsCommissar bool
}

// ResolveNightInput contains parameters for the night resolution
type ResolveNightInput struct {
	RoomID string
}

// ResolveNightOutput contains the night outcome
type ResolveNightOutput struct {
	Room *models.Room

	// EliminatedSeat is the seat the black team unanimously shot, 0 when the
	// votes were split and nobody was eliminated
	EliminatedSeat int
}

// SubmitLastWordsInput contains the pre-dead player's final message
type SubmitLastWordsInput struct {
	RoomID string
	UserID string
	Text   string

	// Skip finalizes the death without a message
	Skip bool
}

// SubmitLastWordsOutput contains the room after the death announcement
type SubmitLastWordsOutput struct {
	Room *models.Room

	// Text is the stored message, empty when skipped
	Text string

	// GameEnded is true when the death decided the game
	GameEnded bool
}

// CastVoteInput contains parameters for a day exclusion vote
type CastVoteInput struct {
	RoomID      string
	VoterUserID string
	TargetSeat  int
}

// CastVoteOutput contains the room after the vote
type CastVoteOutput struct {
	Room *models.Room

	// VotesCast is the number of distinct voters so far this round
	VotesCast int

	// AllVotesIn is true when every living player has voted
	AllVotesIn bool
}

// ResolveDayInput contains parameters for the day resolution
type ResolveDayInput struct {
	RoomID string
}

// ResolveDayOutput contains the day outcome
type ResolveDayOutput struct {
	Room *models.Room

	// EliminatedSeat is the excluded seat, 0 when none
	EliminatedSeat int

	// DefenseRound is true when the vote tied and a restricted re-vote was
	// opened among TiedSeats
	DefenseRound bool

	// TiedSeats lists the seats sharing the highest count when DefenseRound
	// is true
	TiedSeats []int

	// GameEnded is true when the elimination decided the game
	GameEnded bool
}
