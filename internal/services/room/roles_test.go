package room

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/aimafia/coordinator/internal/models"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
)

func (s *RoomServiceTestSuite) fullLobby() *models.Room {
	r := s.lobbyRoom
	for i := 0; i < 10; i++ {
		r.Players = append(r.Players, s.lobbyMember(string(rune('a'+i)), models.PlayerStateReady))
	}
	return r
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func (s *RoomServiceTestSuite) TestStartGameDealsRolesAndSeats() {
	s.expectGetRoom(s.fullLobby())
	// identity permutations pin who gets what; the multiset properties
	// below hold for any permutation
	s.mockShuffler.EXPECT().Perm(10).Return(identityPerm(10)).Times(2)

	var saved *models.Room
	s.mockRoomRepo.EXPECT().
		SaveRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			saved = input.Room
			return nil
		})

	output, err := s.roomService.StartGame(s.ctx, &StartGameInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.False(output.AlreadyActive)
	s.Require().NotNil(saved)

	s.Equal(models.RoomPhaseActive, saved.Phase)
	s.Equal(models.NightStageShooting, saved.NightStage)

	// role multiset is exactly {don:1, commissar:1, mafia:2, civilian:6}
	counts := map[models.Role]int{}
	for _, p := range saved.Players {
		counts[p.Role]++
		s.Equal(models.PlayerStateAlive, p.State)
		s.Zero(p.ShotVotes)
	}
	s.Equal(1, counts[models.RoleDon])
	s.Equal(1, counts[models.RoleCommissar])
	s.Equal(2, counts[models.RoleMafia])
	s.Equal(6, counts[models.RoleCivilian])

	// seats form a permutation of 1..10 and players are stored in seat order
	seen := map[int]bool{}
	for i, p := range saved.Players {
		s.Equal(i+1, p.Seat)
		s.False(seen[p.Seat])
		seen[p.Seat] = true
	}
}

func (s *RoomServiceTestSuite) TestStartGameShuffledSeats() {
	s.expectGetRoom(s.fullLobby())

	// reversed seat permutation, identity role permutation
	reversed := make([]int, 10)
	for i := range reversed {
		reversed[i] = 9 - i
	}
	first := s.mockShuffler.EXPECT().Perm(10).Return(identityPerm(10))
	s.mockShuffler.EXPECT().Perm(10).Return(reversed).After(first)

	var saved *models.Room
	s.mockRoomRepo.EXPECT().
		SaveRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			saved = input.Room
			return nil
		})

	_, err := s.roomService.StartGame(s.ctx, &StartGameInput{RoomID: s.testRoomID})
	s.Require().NoError(err)

	// join-order player "a" drew the don role and seat 10
	don := saved.PlayerBySeat(10)
	s.Require().NotNil(don)
	s.Equal("a", don.UserID)
	s.Equal(models.RoleDon, don.Role)
}

func (s *RoomServiceTestSuite) TestStartGameAlreadyActiveIsNoOp() {
	active := activeRoom(s.testRoomID)
	s.expectGetRoom(active)
	// no shuffle, no save: roles must not be re-dealt

	output, err := s.roomService.StartGame(s.ctx, &StartGameInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.True(output.AlreadyActive)
}

func (s *RoomServiceTestSuite) TestStartGameNotEnoughPlayers() {
	s.lobbyRoom.Players = []*models.Player{s.lobbyMember("a", models.PlayerStateReady)}
	s.expectGetRoom(s.lobbyRoom)

	_, err := s.roomService.StartGame(s.ctx, &StartGameInput{RoomID: s.testRoomID})
	s.Require().ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *RoomServiceTestSuite) TestRolesForRejectsTinyRooms() {
	_, err := rolesFor(4)
	s.Require().ErrorIs(err, ErrInvalidRoomSize)
}

func (s *RoomServiceTestSuite) TestRolesForStandardSizes() {
	roles, err := rolesFor(10)
	s.Require().NoError(err)
	s.Len(roles, 10)

	roles, err = rolesFor(6)
	s.Require().NoError(err)
	s.Len(roles, 6)

	counts := map[models.Role]int{}
	for _, r := range roles {
		counts[r]++
	}
	s.Equal(1, counts[models.RoleDon])
	s.Equal(1, counts[models.RoleCommissar])
	s.Equal(1, counts[models.RoleMafia])
	s.Equal(3, counts[models.RoleCivilian])
}
