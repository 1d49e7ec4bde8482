package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/aimafia/coordinator/internal/services/game Service

import "context"

// Service runs the in-game engines: the night state machine and the day
// exclusion vote
type Service interface {
	// RecordShot counts one black-team shot against a target seat
	RecordShot(ctx context.Context, input *RecordShotInput) (*RecordShotOutput, error)

	// CheckSeat answers a commissar or don role check. Read-only.
	CheckSeat(ctx context.Context, input *CheckSeatInput) (*CheckSeatOutput, error)

	// ResolveNight tallies the night's shots against the unanimity rule and
	// resets every shot counter. Idempotent within a night.
	ResolveNight(ctx context.Context, input *ResolveNightInput) (*ResolveNightOutput, error)

	// SubmitLastWords records or skips the pre-dead player's final message
	// and finalizes the death
	SubmitLastWords(ctx context.Context, input *SubmitLastWordsInput) (*SubmitLastWordsOutput, error)

	// CastVote records a living player's exclusion vote for the current day.
	// Voting again replaces the earlier vote.
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// ResolveDay tallies the day vote once every living player has voted
	ResolveDay(ctx context.Context, input *ResolveDayInput) (*ResolveDayOutput, error)
}
