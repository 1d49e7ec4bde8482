package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/aimafia/coordinator/internal/common/clock/mocks"
	"github.com/aimafia/coordinator/internal/common/keymutex"
	uuidMocks "github.com/aimafia/coordinator/internal/common/uuid/mocks"
	"github.com/aimafia/coordinator/internal/models"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
	roomMocks "github.com/aimafia/coordinator/internal/repositories/room/mocks"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
	userMocks "github.com/aimafia/coordinator/internal/repositories/user/mocks"
	shuffleMocks "github.com/aimafia/coordinator/internal/shuffle/mocks"
)

type RoomServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRoomRepo *roomMocks.MockRepository
	mockUserRepo *userMocks.MockRepository
	mockShuffler *shuffleMocks.MockShuffler
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	roomService  Service
	ctx          context.Context

	// Test data
	testTime   time.Time
	testRoomID string
	testUserID string
	testNick   string

	lobbyRoom *models.Room
}

func (s *RoomServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockShuffler = shuffleMocks.NewMockShuffler(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testRoomID = "test-room-id"
	s.testUserID = "tg-100"
	s.testNick = "@tester"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.lobbyRoom = &models.Room{
		ID:        s.testRoomID,
		Name:      "Friday night",
		Phase:     models.RoomPhaseLobby,
		Players:   []*models.Player{},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	svc, err := New(&Config{
		RoomSize:  10,
		RoomRepo:  s.mockRoomRepo,
		UserRepo:  s.mockUserRepo,
		RoomLocks: keymutex.New(),
		Shuffler:  s.mockShuffler,
		Clock:     s.mockClock,
		UUID:      s.mockUUID,
	})
	s.Require().NoError(err)
	s.roomService = svc
}

func (s *RoomServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

func (s *RoomServiceTestSuite) expectGetRoom(r *models.Room) {
	s.mockRoomRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomID: r.ID}).
		Return(r, nil)
}

func (s *RoomServiceTestSuite) lobbyMember(userID string, state models.PlayerState) *models.Player {
	return &models.Player{
		UserID:        userID,
		Nickname:      "@" + userID,
		State:         state,
		SessionHandle: "ctx-" + userID,
	}
}

func (s *RoomServiceTestSuite) TestFindOrCreateUserExisting() {
	existing := &models.User{ID: s.testUserID, Nickname: s.testNick, GamesPlayed: 4}

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(existing, nil)

	output, err := s.roomService.FindOrCreateUser(s.ctx, &FindOrCreateUserInput{
		UserID:   s.testUserID,
		Nickname: s.testNick,
	})
	s.Require().NoError(err)
	s.Equal(existing, output.User)
	s.False(output.Created)
}

func (s *RoomServiceTestSuite) TestFindOrCreateUserNew() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(nil, userRepo.ErrUserNotFound)

	s.mockUserRepo.EXPECT().
		SaveUser(s.ctx, &userRepo.SaveUserInput{
			User: &models.User{
				ID:        s.testUserID,
				Nickname:  s.testNick,
				CreatedAt: s.testTime,
			},
		}).
		Return(nil)

	output, err := s.roomService.FindOrCreateUser(s.ctx, &FindOrCreateUserInput{
		UserID:   s.testUserID,
		Nickname: s.testNick,
	})
	s.Require().NoError(err)
	s.True(output.Created)
	s.Equal(s.testUserID, output.User.ID)
	s.Equal(0, output.User.GamesPlayed)
}

func (s *RoomServiceTestSuite) TestCreateRoom() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testRoomID)
	s.mockRoomRepo.EXPECT().
		SaveRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			s.Equal(s.testRoomID, input.Room.ID)
			s.Equal(models.RoomPhaseLobby, input.Room.Phase)
			s.Empty(input.Room.Players)
			return nil
		})

	output, err := s.roomService.CreateRoom(s.ctx, &CreateRoomInput{Name: "Friday night"})
	s.Require().NoError(err)
	s.Equal("Friday night", output.Room.Name)
	s.Equal(s.testRoomID, output.Room.ID)
}

func (s *RoomServiceTestSuite) TestFindRoomNotFound() {
	s.mockRoomRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomID: "missing"}).
		Return(nil, roomRepo.ErrRoomNotFound)

	_, err := s.roomService.FindRoom(s.ctx, &FindRoomInput{RoomID: "missing"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RoomServiceTestSuite) TestRandomOpenRoomEmptyResult() {
	s.mockRoomRepo.EXPECT().
		GetRandomOpenRoom(s.ctx).
		Return(nil, roomRepo.ErrNoOpenRooms)

	output, err := s.roomService.RandomOpenRoom(s.ctx, &RandomOpenRoomInput{})
	s.Require().NoError(err, "no open rooms is not an error")
	s.Nil(output.Room)
}

func (s *RoomServiceTestSuite) TestListOpenRooms() {
	s.mockRoomRepo.EXPECT().
		ListOpenRooms(s.ctx).
		Return(&roomRepo.ListOpenRoomsOutput{
			Rooms: []*models.Room{s.lobbyRoom},
		}, nil)

	output, err := s.roomService.ListOpenRooms(s.ctx, &ListOpenRoomsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Rooms, 1)
	s.Equal(s.testRoomID, output.Rooms[0].ID)
}

func (s *RoomServiceTestSuite) TestJoinRoom() {
	s.expectGetRoom(s.lobbyRoom)
	s.mockRoomRepo.EXPECT().
		SaveRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			s.Require().Len(input.Room.Players, 1)
			joined := input.Room.Players[0]
			s.Equal(s.testUserID, joined.UserID)
			s.Equal(models.PlayerStateNotReady, joined.State)
			s.Equal("ctx-1", joined.SessionHandle)
			s.Equal(models.RoleUnassigned, joined.Role)
			return nil
		})

	output, err := s.roomService.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID:        s.testRoomID,
		UserID:        s.testUserID,
		Nickname:      s.testNick,
		SessionHandle: "ctx-1",
		ChatID:        500,
	})
	s.Require().NoError(err)
	s.False(output.AlreadyMember)
}

func (s *RoomServiceTestSuite) TestJoinRoomIdempotent() {
	s.lobbyRoom.Players = []*models.Player{s.lobbyMember(s.testUserID, models.PlayerStateReady)}
	s.expectGetRoom(s.lobbyRoom)
	// no save: the join is a no-op

	output, err := s.roomService.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID: s.testRoomID,
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.True(output.AlreadyMember)
	s.Len(output.Room.Players, 1)
}

func (s *RoomServiceTestSuite) TestJoinRoomFull() {
	for i := 0; i < 10; i++ {
		s.lobbyRoom.Players = append(s.lobbyRoom.Players, s.lobbyMember(string(rune('a'+i)), models.PlayerStateNotReady))
	}
	s.expectGetRoom(s.lobbyRoom)

	_, err := s.roomService.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID: s.testRoomID,
		UserID: s.testUserID,
	})
	s.Require().ErrorIs(err, ErrRoomFull)
}

func (s *RoomServiceTestSuite) TestLeaveRoomRoundTrip() {
	s.lobbyRoom.Players = []*models.Player{
		s.lobbyMember("other", models.PlayerStateReady),
		s.lobbyMember(s.testUserID, models.PlayerStateNotReady),
	}
	s.expectGetRoom(s.lobbyRoom)
	s.mockRoomRepo.EXPECT().
		SaveRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			s.Require().Len(input.Room.Players, 1)
			s.Equal("other", input.Room.Players[0].UserID)
			s.Nil(input.Room.Player(s.testUserID), "no trace of the leaver remains")
			return nil
		})

	output, err := s.roomService.LeaveRoom(s.ctx, &LeaveRoomInput{
		RoomID: s.testRoomID,
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.False(output.Forfeited)
}

func (s *RoomServiceTestSuite) TestLeaveLastMemberDeletesRoom() {
	s.lobbyRoom.Players = []*models.Player{s.lobbyMember(s.testUserID, models.PlayerStateReady)}
	s.expectGetRoom(s.lobbyRoom)
	s.mockRoomRepo.EXPECT().
		DeleteRoom(s.ctx, &roomRepo.DeleteRoomInput{RoomID: s.testRoomID}).
		Return(nil)
	// no save: the empty room is dissolved instead

	output, err := s.roomService.LeaveRoom(s.ctx, &LeaveRoomInput{
		RoomID: s.testRoomID,
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.True(output.RoomDeleted)
	s.Empty(output.Room.Players)
}

func (s *RoomServiceTestSuite) TestLeaveRoomNotMember() {
	s.expectGetRoom(s.lobbyRoom)

	_, err := s.roomService.LeaveRoom(s.ctx, &LeaveRoomInput{
		RoomID: s.testRoomID,
		UserID: s.testUserID,
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RoomServiceTestSuite) TestLeaveActiveGameForfeits() {
	active := activeRoom(s.testRoomID)
	s.expectGetRoom(active)
	s.mockRoomRepo.EXPECT().SaveRoom(s.ctx, gomock.Any()).Return(nil)

	// seat 5 is a civilian; their forfeit does not decide the game
	leaver := active.PlayerBySeat(5)

	output, err := s.roomService.LeaveRoom(s.ctx, &LeaveRoomInput{
		RoomID: s.testRoomID,
		UserID: leaver.UserID,
	})
	s.Require().NoError(err)
	s.True(output.Forfeited)
	s.False(output.GameEnded)
	s.Equal(models.PlayerStateDead, leaver.State)
	s.NotNil(output.Room.Player(leaver.UserID), "seat is retained")
}

func (s *RoomServiceTestSuite) TestLeavePreDeadVictimOpensDay() {
	// the night victim leaves before giving last words; the death is
	// finalized and the day opens instead of the night staying stuck
	active := activeRoom(s.testRoomID)
	active.NightStage = models.NightStageResolving
	active.PendingDeathSeat = 6
	active.LastWords = "from an earlier night"
	leaver := active.PlayerBySeat(6)
	leaver.State = models.PlayerStatePreDead

	s.expectGetRoom(active)
	s.mockRoomRepo.EXPECT().SaveRoom(s.ctx, gomock.Any()).Return(nil)

	output, err := s.roomService.LeaveRoom(s.ctx, &LeaveRoomInput{
		RoomID: s.testRoomID,
		UserID: leaver.UserID,
	})
	s.Require().NoError(err)
	s.True(output.Forfeited)
	s.False(output.GameEnded)
	s.Equal(models.PlayerStateDead, leaver.State)
	s.Equal(models.NightStageAnnounced, active.NightStage)
	s.Empty(active.LastWords)
	s.NotNil(active.DayVotes)
	s.Empty(active.DayVotes)
}

func (s *RoomServiceTestSuite) TestLeaveActiveGameDropsBallot() {
	// seat 5 leaves mid-vote: their own vote and the votes aimed at their
	// seat are discarded, unrelated votes stand
	active := activeRoom(s.testRoomID)
	active.NightStage = models.NightStageAnnounced
	active.DayVotes = map[string]int{
		"e": 2, // the leaver's own vote
		"a": 5, // aimed at the leaver's seat
		"b": 3,
	}

	s.expectGetRoom(active)
	s.mockRoomRepo.EXPECT().SaveRoom(s.ctx, gomock.Any()).Return(nil)

	output, err := s.roomService.LeaveRoom(s.ctx, &LeaveRoomInput{
		RoomID: s.testRoomID,
		UserID: "e",
	})
	s.Require().NoError(err)
	s.True(output.Forfeited)
	s.Equal(map[string]int{"b": 3}, active.DayVotes)
}

func (s *RoomServiceTestSuite) TestSetPlayerStateQuorumFlip() {
	for i := 0; i < 10; i++ {
		s.lobbyRoom.Players = append(s.lobbyRoom.Players, s.lobbyMember(string(rune('a'+i)), models.PlayerStateReady))
	}
	s.lobbyRoom.Players[0].State = models.PlayerStateNotReady

	s.expectGetRoom(s.lobbyRoom)
	s.mockRoomRepo.EXPECT().SaveRoom(s.ctx, gomock.Any()).Return(nil)

	output, err := s.roomService.SetPlayerState(s.ctx, &SetPlayerStateInput{
		RoomID: s.testRoomID,
		UserID: "a",
		State:  models.PlayerStateReady,
	})
	s.Require().NoError(err)
	s.True(output.QuorumReached)

	// the same player un-readies again
	s.expectGetRoom(s.lobbyRoom)
	s.mockRoomRepo.EXPECT().SaveRoom(s.ctx, gomock.Any()).Return(nil)

	output, err = s.roomService.SetPlayerState(s.ctx, &SetPlayerStateInput{
		RoomID: s.testRoomID,
		UserID: "a",
		State:  models.PlayerStateNotReady,
	})
	s.Require().NoError(err)
	s.False(output.QuorumReached)
}

func (s *RoomServiceTestSuite) TestSetPlayerStateRejectsGameStates() {
	_, err := s.roomService.SetPlayerState(s.ctx, &SetPlayerStateInput{
		RoomID: s.testRoomID,
		UserID: s.testUserID,
		State:  models.PlayerStateDead,
	})
	s.Require().ErrorIs(err, ErrInvalidState)
}

// activeRoom builds a started 10-player room: seat 1 don, seats 2-3 mafia,
// seat 4 commissar, seats 5-10 civilians.
func activeRoom(id string) *models.Room {
	r := &models.Room{
		ID:         id,
		Name:       "in progress",
		Phase:      models.RoomPhaseActive,
		NightStage: models.NightStageShooting,
	}
	roles := []models.Role{
		models.RoleDon, models.RoleMafia, models.RoleMafia, models.RoleCommissar,
		models.RoleCivilian, models.RoleCivilian, models.RoleCivilian,
		models.RoleCivilian, models.RoleCivilian, models.RoleCivilian,
	}
	for i, role := range roles {
		r.Players = append(r.Players, &models.Player{
			UserID:        string(rune('a' + i)),
			Nickname:      "@player",
			Role:          role,
			State:         models.PlayerStateAlive,
			Seat:          i + 1,
			SessionHandle: "ctx-" + string(rune('a'+i)),
		})
	}
	return r
}
