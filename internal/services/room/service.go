package room

import (
	"context"
	"errors"

	"github.com/aimafia/coordinator/internal/common/clock"
	"github.com/aimafia/coordinator/internal/common/keymutex"
	"github.com/aimafia/coordinator/internal/common/uuid"
	"github.com/aimafia/coordinator/internal/models"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
	"github.com/aimafia/coordinator/internal/shuffle"
)

// service implements the Service interface
type service struct {
	config    *Config
	roomRepo  roomRepo.Repository
	userRepo  userRepo.Repository
	roomLocks *keymutex.KeyMutex
	shuffler  shuffle.Shuffler
	clock     clock.Clock
	uuid      uuid.UUID
}

// New creates a new room service
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
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.RoomSize == 0 {
		cfg.RoomSize = 10
	}
	if _, err := rolesFor(cfg.RoomSize); err != nil {
		return nil, err
	}

	return &service{
		config:    cfg,
		roomRepo:  cfg.RoomRepo,
		userRepo:  cfg.UserRepo,
		roomLocks: cfg.RoomLocks,
		shuffler:  cfg.Shuffler,
		clock:     cfg.Clock,
		uuid:      cfg.UUID,
	}, nil
}

// FindOrCreateUser resolves a chat-platform identity to a user record
func (s *service) FindOrCreateUser(ctx context.Context, input *FindOrCreateUserInput) (*FindOrCreateUserOutput, error) {
	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err == nil {
		return &FindOrCreateUserOutput{
			User: existing,
		}, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	created := &models.User{
		ID:        input.UserID,
		Nickname:  input.Nickname,
		CreatedAt: s.clock.Now(),
	}

	err = s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		User: created,
	})
	if err != nil {
		return nil, err
	}

	return &FindOrCreateUserOutput{
		User:    created,
		Created: true,
	}, nil
}

// CreateRoom allocates a new empty lobby room
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	now := s.clock.Now()

	newRoom := &models.Room{
		ID:        s.uuid.NewUUID(),
		Name:      input.Name,
		Phase:     models.RoomPhaseLobby,
		Players:   []*models.Player{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: newRoom,
	})
	if err != nil {
		return nil, err
	}

	return &CreateRoomOutput{
		Room: newRoom,
	}, nil
}

// FindRoom retrieves a room by ID
func (s *service) FindRoom(ctx context.Context, input *FindRoomInput) (*FindRoomOutput, error) {
	found, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &FindRoomOutput{
		Room: found,
	}, nil
}

// RandomOpenRoom picks a random lobby-phase room. No open room is an
// expected empty result, not an error.
func (s *service) RandomOpenRoom(ctx context.Context, input *RandomOpenRoomInput) (*RandomOpenRoomOutput, error) {
	picked, err := s.roomRepo.GetRandomOpenRoom(ctx)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNoOpenRooms) {
			return &RandomOpenRoomOutput{}, nil
		}
		return nil, err
	}

	return &RandomOpenRoomOutput{
		Room: picked,
	}, nil
}

// ListOpenRooms retrieves every lobby-phase room
func (s *service) ListOpenRooms(ctx context.Context, input *ListOpenRoomsInput) (*ListOpenRoomsOutput, error) {
	listed, err := s.roomRepo.ListOpenRooms(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOpenRoomsOutput{
		Rooms: listed.Rooms,
	}, nil
}

// JoinRoom admits a user into a lobby room. Joining a room the user is
// already a member of is a no-op.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if existing := current.Player(input.UserID); existing != nil {
		return &JoinRoomOutput{
			Room:          current,
			AlreadyMember: true,
		}, nil
	}

	if current.Phase != models.RoomPhaseLobby {
		return nil, ErrInvalidRoomPhase
	}

	if len(current.Players) >= s.config.RoomSize {
		return nil, ErrRoomFull
	}

	current.Players = append(current.Players, &models.Player{
		UserID:        input.UserID,
		Nickname:      input.Nickname,
		State:         models.PlayerStateNotReady,
		SessionHandle: input.SessionHandle,
		ChatID:        input.ChatID,
	})

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	return &JoinRoomOutput{
		Room: current,
	}, nil
}

// LeaveRoom removes a lobby member entirely. Once the game is active the
// seat order must stay a permutation, so the player forfeits instead: they
// are marked dead and the win condition is re-evaluated.
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	leaving := current.Player(input.UserID)
	if leaving == nil {
		return nil, ErrPlayerNotFound
	}

	output := &LeaveRoomOutput{}

	switch current.Phase {
	case models.RoomPhaseLobby:
		remaining := make([]*models.Player, 0, len(current.Players))
		for _, p := range current.Players {
			if p.UserID != input.UserID {
				remaining = append(remaining, p)
			}
		}
		current.Players = remaining

		// the last member leaving dissolves the room
		if len(current.Players) == 0 {
			err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{
				RoomID: input.RoomID,
			})
			if err != nil {
				return nil, err
			}
			s.roomLocks.Forget(input.RoomID)

			output.Room = current
			output.RoomDeleted = true
			return output, nil
		}

	case models.RoomPhaseActive:
		if leaving.State == models.PlayerStateDead {
			return nil, ErrInvalidState
		}
		wasPreDead := leaving.State == models.PlayerStatePreDead
		leaving.State = models.PlayerStateDead
		output.Forfeited = true

		// the night's pending victim leaving counts as skipped last
		// words: the death is announced and a fresh day opens
		if wasPreDead {
			current.LastWords = ""
			current.NightStage = models.NightStageAnnounced
			current.DayVotes = make(map[string]int)
			current.RevoteSeats = nil
		}

		// a forfeit voids the leaver's ballot both ways: their own vote
		// and any vote aimed at their seat
		delete(current.DayVotes, input.UserID)
		for voter, seat := range current.DayVotes {
			if seat == leaving.Seat {
				delete(current.DayVotes, voter)
			}
		}

		output.GameEnded, err = s.settleIfDecided(ctx, current)
		if err != nil {
			return nil, err
		}

	default:
		return nil, ErrInvalidRoomPhase
	}

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	output.Room = current
	return output, nil
}

// SetPlayerState flips a lobby member between ready and not ready
func (s *service) SetPlayerState(ctx context.Context, input *SetPlayerStateInput) (*SetPlayerStateOutput, error) {
	if input.State != models.PlayerStateReady && input.State != models.PlayerStateNotReady {
		return nil, ErrInvalidState
	}

	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.Phase != models.RoomPhaseLobby {
		return nil, ErrInvalidRoomPhase
	}

	member := current.Player(input.UserID)
	if member == nil {
		return nil, ErrPlayerNotFound
	}

	member.State = input.State

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	return &SetPlayerStateOutput{
		Room:          current,
		QuorumReached: current.IsQuorum(s.config.RoomSize),
	}, nil
}

// settleIfDecided checks the win condition after a forfeit and, when the
// game is over, ends the room and updates lifetime counters
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

func (s *service) loadRoom(ctx context.Context, roomID string) (*models.Room, error) {
	current, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return current, nil
}

func (s *service) saveRoom(ctx context.Context, current *models.Room) error {
	current.UpdatedAt = s.clock.Now()
	return s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: current,
	})
}
