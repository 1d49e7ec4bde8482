package game

import (
	"context"

	"github.com/aimafia/coordinator/internal/models"
)

// RecordShot counts one black-team shot against a target seat. Each
// shooter fires once per night; agreement is only measured at
// resolution time.
func (s *service) RecordShot(ctx context.Context, input *RecordShotInput) (*RecordShotOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadActiveRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.NightStage != models.NightStageShooting {
		return nil, ErrInvalidNightStage
	}

	shooter := current.Player(input.ShooterUserID)
	if shooter == nil {
		return nil, ErrPlayerNotFound
	}
	if shooter.State != models.PlayerStateAlive {
		return nil, ErrPlayerDead
	}
	if !shooter.Role.IsBlack() {
		return nil, ErrNotBlackTeam
	}
	if shooter.HasShot {
		return nil, ErrAlreadyShot
	}

	target := current.PlayerBySeat(input.TargetSeat)
	if target == nil || target.State != models.PlayerStateAlive {
		return nil, ErrInvalidSeat
	}

	shooter.HasShot = true
	target.ShotVotes++

	// once every living black player has fired the shooting stage ends
	if shootersFired(current) >= current.CountBlack() {
		current.NightStage = models.NightStageChecking
	}

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	return &RecordShotOutput{
		Room:       current,
		AllShotsIn: current.NightStage == models.NightStageChecking,
	}, nil
}

// CheckSeat answers a role check. The commissar learns the seat's team
// color, the don learns whether the seat is the commissar. Checks never
// mutate the room and are valid at any point of the night.
func (s *service) CheckSeat(ctx context.Context, input *CheckSeatInput) (*CheckSeatOutput, error) {
	current, err := s.loadActiveRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	checker := current.Player(input.CheckerUserID)
	if checker == nil {
		return nil, ErrPlayerNotFound
	}
	if checker.State != models.PlayerStateAlive {
		return nil, ErrPlayerDead
	}
	if checker.Role != models.RoleCommissar && checker.Role != models.RoleDon {
		return nil, ErrNotChecker
	}

	target := current.PlayerBySeat(input.TargetSeat)
	if target == nil {
		return nil, ErrInvalidSeat
	}

	output := &CheckSeatOutput{
		CheckerRole: checker.Role,
	}

	switch checker.Role {
	case models.RoleCommissar:
		output.Color = models.TeamRed
		if target.Role.IsBlack() {
			output.Color = models.TeamBlack
		}
	case models.RoleDon:
		output.IsCommissar = target.Role == models.RoleCommissar
	}

	return output, nil
}

// ResolveNight tallies the night. A target dies only when every living
// black player shot them; split votes eliminate nobody. Counters reset
// either way, so a repeated call within the same night changes nothing.
func (s *service) ResolveNight(ctx context.Context, input *ResolveNightInput) (*ResolveNightOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadActiveRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.NightStage == models.NightStageResolving || current.NightStage == models.NightStageAnnounced {
		return &ResolveNightOutput{
			Room:           current,
			EliminatedSeat: current.PendingDeathSeat,
		}, nil
	}

	cntBlack := current.CountBlack()

	var victim *models.Player
	for _, p := range current.AlivePlayers() {
		if cntBlack > 0 && p.ShotVotes == cntBlack {
			victim = p
			break
		}
	}

	for _, p := range current.Players {
		p.ShotVotes = 0
		p.HasShot = false
	}

	if victim != nil {
		victim.State = models.PlayerStatePreDead
		current.PendingDeathSeat = victim.Seat
		current.NightStage = models.NightStageResolving
	} else {
		current.PendingDeathSeat = 0
		s.openDay(current)
	}

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	return &ResolveNightOutput{
		Room:           current,
		EliminatedSeat: current.PendingDeathSeat,
	}, nil
}

// SubmitLastWords stores or skips the pending victim's final message,
// finalizes the death and opens the day
func (s *service) SubmitLastWords(ctx context.Context, input *SubmitLastWordsInput) (*SubmitLastWordsOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadActiveRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.NightStage != models.NightStageResolving {
		return nil, ErrInvalidNightStage
	}

	victim := current.Player(input.UserID)
	if victim == nil {
		return nil, ErrPlayerNotFound
	}
	if victim.State != models.PlayerStatePreDead {
		return nil, ErrNotPreDead
	}

	text := ""
	if !input.Skip {
		text = input.Text
	}
	current.LastWords = text

	victim.State = models.PlayerStateDead
	s.openDay(current)

	ended, err := s.settleIfDecided(ctx, current)
	if err != nil {
		return nil, err
	}

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	return &SubmitLastWordsOutput{
		Room:      current,
		Text:      text,
		GameEnded: ended,
	}, nil
}

// openDay publishes the night outcome and starts a fresh voting round
func (s *service) openDay(current *models.Room) {
	current.NightStage = models.NightStageAnnounced
	current.DayVotes = make(map[string]int)
	current.RevoteSeats = nil
}

func shootersFired(current *models.Room) int {
	total := 0
	for _, p := range current.AlivePlayers() {
		if p.Role.IsBlack() && p.HasShot {
			total++
		}
	}
	return total
}
