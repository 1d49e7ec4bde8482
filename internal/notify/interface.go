package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/aimafia/coordinator/internal/notify Notifier

import "context"

// Notifier pushes a condition event to one participant's conversational
// session. Delivery is best-effort; callers tolerate duplicates and log
// failures instead of retrying.
type Notifier interface {
	Deliver(ctx context.Context, input *DeliverInput) error
}

// DeliverInput contains one event for one session
type DeliverInput struct {
	// SessionHandle routes the event to the participant's session
	SessionHandle string

	// Kind names the condition that became true
	Kind string

	// RoomID is the room the condition was evaluated against
	RoomID string
}
