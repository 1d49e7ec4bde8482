package game

import (
	"context"
	"errors"

	"github.com/aimafia/coordinator/internal/common/clock"
	"github.com/aimafia/coordinator/internal/common/keymutex"
	"github.com/aimafia/coordinator/internal/models"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	config    *Config
	roomRepo  roomRepo.Repository
	userRepo  userRepo.Repository
	roomLocks *keymutex.KeyMutex
	clock     clock.Clock
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.RoomLocks == nil {
		return nil, ErrNilRoomLocks
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		config:    cfg,
		roomRepo:  cfg.RoomRepo,
		userRepo:  cfg.UserRepo,
		roomLocks: cfg.RoomLocks,
		clock:     cfg.Clock,
	}, nil
}

// settleIfDecided checks the win condition after a death and, when the game
// is over, ends the room and updates lifetime counters
func (s *service) settleIfDecided(ctx context.Context, current *models.Room) (bool, error) {
	winner, decided := winnerIfDecided(current)
	if !decided {
		return false, nil
	}

	current.Phase = models.RoomPhaseEnded
	current.Winner = winner

	for _, p := range current.Players {
		wins := 0
		if (winner == models.TeamBlack) == p.Role.IsBlack() {
			wins = 1
		}
		_, err := s.userRepo.IncrementStats(ctx, &userRepo.IncrementStatsInput{
			UserID:      p.UserID,
			GamesPlayed: 1,
			Wins:        wins,
		})
		if err != nil {
			return false, err
		}
	}

	return true, nil
}

// winnerIfDecided applies the standard mafia win rule
func winnerIfDecided(current *models.Room) (models.Team, bool) {
	black := current.AliveCount(models.TeamBlack)
	red := current.AliveCount(models.TeamRed)

	switch {
	case black == 0:
		return models.TeamRed, true
	case black >= red:
		return models.TeamBlack, true
	}
	return "", false
}

func (s *service) loadActiveRoom(ctx context.Context, roomID string) (*models.Room, error) {
	current, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if current.Phase != models.RoomPhaseActive {
		return nil, ErrInvalidRoomPhase
	}
	return current, nil
}

func (s *service) saveRoom(ctx context.Context, current *models.Room) error {
	current.UpdatedAt = s.clock.Now()
	return s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: current,
	})
}
