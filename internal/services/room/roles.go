package room

import (
	"context"

	"github.com/aimafia/coordinator/internal/models"
)

// rolesFor builds the role multiset for a game of n players: one don, one
// commissar and a black team a third of the table strong; everybody else
// is a civilian. For the standard n=10 that is {don:1, commissar:1,
// mafia:2, civilian:6}.
func rolesFor(n int) ([]models.Role, error) {
	blackTotal := n / 3
	mafia := blackTotal - 1
	civilians := n - blackTotal - 1

	if n < 5 || mafia < 1 || civilians < 1 {
		return nil, ErrInvalidRoomSize
	}

	roles := make([]models.Role, 0, n)
	roles = append(roles, models.RoleDon, models.RoleCommissar)
	for i := 0; i < mafia; i++ {
		roles = append(roles, models.RoleMafia)
	}
	for i := 0; i < civilians; i++ {
		roles = append(roles, models.RoleCivilian)
	}
	return roles, nil
}

// StartGame deals roles and seats and activates the room. The phase check
// runs under the room lock against the freshly loaded document, so a second
// concurrent start cannot re-shuffle an active game; it reports
// AlreadyActive instead.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	unlock := s.roomLocks.Lock(input.RoomID)
	defer unlock()

	current, err := s.loadRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if current.Phase != models.RoomPhaseLobby {
		if current.Phase == models.RoomPhaseActive {
			return &StartGameOutput{
				Room:          current,
				AlreadyActive: true,
			}, nil
		}
		return nil, ErrInvalidRoomPhase
	}

	if len(current.Players) != s.config.RoomSize {
		return nil, ErrNotEnoughPlayers
	}

	roles, err := rolesFor(s.config.RoomSize)
	if err != nil {
		return nil, err
	}

	// Two independent permutations: one deals the roles, one deals the seats
	rolePerm := s.shuffler.Perm(len(roles))
	seatPerm := s.shuffler.Perm(len(current.Players))

	seated := make([]*models.Player, len(current.Players))
	for i, p := range current.Players {
		p.Role = roles[rolePerm[i]]
		p.Seat = seatPerm[i] + 1
		p.State = models.PlayerStateAlive
		p.ShotVotes = 0
		p.HasShot = false
		seated[p.Seat-1] = p
	}

	// Players are kept in seat order from here on
	current.Players = seated
	current.Phase = models.RoomPhaseActive
	current.NightStage = models.NightStageShooting
	current.DayVotes = nil
	current.RevoteSeats = nil
	current.PendingDeathSeat = 0
	current.LastWords = ""

	if err := s.saveRoom(ctx, current); err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Room: current,
	}, nil
}
