package sync

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrUnknownCondition is returned for a condition outside the closed set
	ErrUnknownCondition = errors.New("unknown condition")

	// ErrPollExpired is returned when a wait outlives the poll TTL without
	// the condition becoming true
	ErrPollExpired = errors.New("poll expired before the condition was met")

	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilRoomRepo is returned when no room repository is provided
	ErrNilRoomRepo = errors.New("room repository cannot be nil")

	// ErrNilNotifier is returned when no notifier is provided
	ErrNilNotifier = errors.New("notifier cannot be nil")
)
