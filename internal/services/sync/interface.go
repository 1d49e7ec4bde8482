package sync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/aimafia/coordinator/internal/services/sync Service

import "context"

// Service is the readiness bus. Sessions either block on a condition
// themselves or arm a background poller that fans the event out to every
// participant once the condition holds.
type Service interface {
	// WaitCondition blocks until the condition holds, the context is
	// cancelled or the poll TTL expires
	WaitCondition(ctx context.Context, input *WaitConditionInput) (*WaitConditionOutput, error)

	// ArmPoller starts at most one background poller per room and condition.
	// Re-arming a running poller is a no-op.
	ArmPoller(ctx context.Context, input *ArmPollerInput) (*ArmPollerOutput, error)

	// Stop cancels every running poller and waits for them to exit
	Stop()
}
