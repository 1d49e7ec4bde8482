package game

import (
	"context"

	"github.com/aimafia/coordinator/internal/models"
)

// CastVote records a living player's exclusion vote. Voting again replaces
// the earlier vote; during a re-vote round targets outside the tied seats
// are rejected.
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadActiveRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.NightStage != models.NightStageAnnounced {
		return nil, ErrInvalidNightStage
	}

	voter := current.Player(input.VoterUserID)
	if voter == nil {
		return nil, ErrPlayerNotFound
	}
	if voter.State != models.PlayerStateAlive {
		return nil, ErrPlayerDead
	}

	target := current.PlayerBySeat(input.TargetSeat)
	if target == nil || target.State != models.PlayerStateAlive {
		return nil, ErrInvalidSeat
	}

	if !current.RevoteAllowed(input.TargetSeat) {
		return nil, ErrVoteRestricted
	}

	if current.DayVotes == nil {
		current.DayVotes = make(map[string]int)
	}
	current.DayVotes[input.VoterUserID] = input.TargetSeat

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	votesCast := len(current.DayVotes)
	return &CastVoteOutput{
		Room:       current,
		VotesCast:  votesCast,
		AllVotesIn: votesCast == len(current.AlivePlayers()),
	}, nil
}

// ResolveDay tallies the day vote. A unique maximum eliminates that seat.
// A first tie opens a defense round and a re-vote restricted to the tied
// seats; a tie on the re-vote round eliminates nobody.
func (s *service) ResolveDay(ctx context.Context, input *ResolveDayInput) (*ResolveDayOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadActiveRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.NightStage != models.NightStageAnnounced {
		return nil, ErrInvalidNightStage
	}

	if len(current.DayVotes) < len(current.AlivePlayers()) {
		return nil, ErrVotingIncomplete
	}

	tally := current.TallyVotes()
	output := &ResolveDayOutput{}

	switch {
	case !tally.IsTie:
		excluded := current.PlayerBySeat(tally.TopSeats[0])
		excluded.State = models.PlayerStateDead
		output.EliminatedSeat = excluded.Seat

		s.closeDay(current)

		output.GameEnded, err = s.settleIfDecided(ctx, current)
		if err != nil {
			return nil, err
		}

	case len(current.RevoteSeats) > 0:
		// second tie, the day ends with nobody excluded
		s.closeDay(current)

	default:
		current.RevoteSeats = tally.TopSeats
		current.DayVotes = make(map[string]int)
		output.DefenseRound = true
		output.TiedSeats = tally.TopSeats
	}

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	output.Room = current
	return output, nil
}

// closeDay clears the day state and starts the next night
func (s *service) closeDay(current *models.Room) {
	current.DayVotes = make(map[string]int)
	current.RevoteSeats = nil
	current.PendingDeathSeat = 0
	current.LastWords = ""
	current.NightStage = models.NightStageShooting
}
