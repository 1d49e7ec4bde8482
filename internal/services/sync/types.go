package sync

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/aimafia/coordinator/internal/models"
	"github.com/aimafia/coordinator/internal/notify"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
)

// Config holds configuration for the sync service
type Config struct {
	// Number of players a game needs; used by the lobby quorum condition
	RoomSize int

	// PollInterval is the delay between condition re-evaluations
	PollInterval time.Duration

	// PollTTL bounds the lifetime of every wait and every armed poller
	PollTTL time.Duration

	// Repository dependencies
	RoomRepo roomRepo.Repository

	// Notifier fans condition events out to the participants' sessions
	Notifier notify.Notifier

	// Logger records poller lifecycle and delivery failures
	Logger zerolog.Logger
}

// WaitConditionInput contains parameters for a blocking wait
type WaitConditionInput struct {
	RoomID    string
	Condition Condition
}

// WaitConditionOutput contains the room snapshot that satisfied the
// condition
type WaitConditionOutput struct {
	Room *models.Room
}

// ArmPollerInput contains parameters for arming a background poller
type ArmPollerInput struct {
	RoomID    string
	Condition Condition
}

// ArmPollerOutput reports whether a poller was started
type ArmPollerOutput struct {
	// AlreadyArmed is true when a poller for this room and condition was
	// already running and no new one was started
	AlreadyArmed bool
}
