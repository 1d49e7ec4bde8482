package game

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/aimafia/coordinator/internal/models"
	userRepo "github.com/aimafia/coordinator/internal/repositories/user"
)

func (s *GameServiceTestSuite) openDayRoom() {
	s.room.NightStage = models.NightStageAnnounced
	s.room.DayVotes = map[string]int{}
}

// castAll records one vote per living player, cycling through the given
// target seats in seat order
func (s *GameServiceTestSuite) castAll(targets ...int) {
	i := 0
	for _, p := range s.room.AlivePlayers() {
		s.room.DayVotes[p.UserID] = targets[i%len(targets)]
		i++
	}
}

func (s *GameServiceTestSuite) TestCastVoteReplacesEarlierVote() {
	s.openDayRoom()

	s.expectGetRoom()
	s.expectSaveRoom()
	output, err := s.gameService.CastVote(s.ctx, &CastVoteInput{
		RoomID:      s.testRoomID,
		VoterUserID: "a",
		TargetSeat:  5,
	})
	s.Require().NoError(err)
	s.Equal(1, output.VotesCast)

	s.expectGetRoom()
	s.expectSaveRoom()
	output, err = s.gameService.CastVote(s.ctx, &CastVoteInput{
		RoomID:      s.testRoomID,
		VoterUserID: "a",
		TargetSeat:  6,
	})
	s.Require().NoError(err)
	s.Equal(1, output.VotesCast, "a corrected vote is not a second vote")
	s.Equal(6, s.room.DayVotes["a"])
}

func (s *GameServiceTestSuite) TestCastVoteCompletesRound() {
	s.openDayRoom()
	for _, p := range s.room.AlivePlayers()[:9] {
		s.room.DayVotes[p.UserID] = 2
	}

	s.expectGetRoom()
	s.expectSaveRoom()
	output, err := s.gameService.CastVote(s.ctx, &CastVoteInput{
		RoomID:      s.testRoomID,
		VoterUserID: "j",
		TargetSeat:  2,
	})
	s.Require().NoError(err)
	s.True(output.AllVotesIn)
	s.Equal(10, output.VotesCast)
}

func (s *GameServiceTestSuite) TestCastVoteRestrictedDuringRevote() {
	s.openDayRoom()
	s.room.RevoteSeats = []int{2, 5}

	s.expectGetRoom()
	_, err := s.gameService.CastVote(s.ctx, &CastVoteInput{
		RoomID:      s.testRoomID,
		VoterUserID: "a",
		TargetSeat:  7,
	})
	s.Require().ErrorIs(err, ErrVoteRestricted)
}

func (s *GameServiceTestSuite) TestCastVoteRejectsDeadVoter() {
	s.openDayRoom()
	s.room.PlayerBySeat(5).State = models.PlayerStateDead

	s.expectGetRoom()
	_, err := s.gameService.CastVote(s.ctx, &CastVoteInput{
		RoomID:      s.testRoomID,
		VoterUserID: "e",
		TargetSeat:  2,
	})
	s.Require().ErrorIs(err, ErrPlayerDead)
}

func (s *GameServiceTestSuite) TestCastVoteWrongStage() {
	s.expectGetRoom()
	_, err := s.gameService.CastVote(s.ctx, &CastVoteInput{
		RoomID:      s.testRoomID,
		VoterUserID: "a",
		TargetSeat:  5,
	})
	s.Require().ErrorIs(err, ErrInvalidNightStage)
}

func (s *GameServiceTestSuite) TestResolveDayUniqueMaximum() {
	s.openDayRoom()
	// 6 votes on seat 2, 4 votes on seat 5
	for i, p := range s.room.AlivePlayers() {
		seat := 2
		if i >= 6 {
			seat = 5
		}
		s.room.DayVotes[p.UserID] = seat
	}

	s.expectGetRoom()
	s.expectSaveRoom()
	output, err := s.gameService.ResolveDay(s.ctx, &ResolveDayInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal(2, output.EliminatedSeat)
	s.False(output.DefenseRound)
	s.False(output.GameEnded)
	s.Equal(models.PlayerStateDead, s.room.PlayerBySeat(2).State)
	s.Equal(models.NightStageShooting, s.room.NightStage, "the next night begins")
	s.Empty(s.room.DayVotes)
	s.Empty(s.room.RevoteSeats)
}

func (s *GameServiceTestSuite) TestResolveDayIncomplete() {
	s.openDayRoom()
	s.room.DayVotes["a"] = 5

	s.expectGetRoom()
	_, err := s.gameService.ResolveDay(s.ctx, &ResolveDayInput{RoomID: s.testRoomID})
	s.Require().ErrorIs(err, ErrVotingIncomplete)
}

func (s *GameServiceTestSuite) TestResolveDayTieOpensDefenseRound() {
	s.openDayRoom()
	// 4 votes each on seats 2 and 5, 2 votes on seat 7
	votes := []int{2, 2, 2, 2, 5, 5, 5, 5, 7, 7}
	for i, p := range s.room.AlivePlayers() {
		s.room.DayVotes[p.UserID] = votes[i]
	}

	s.expectGetRoom()
	s.expectSaveRoom()
	output, err := s.gameService.ResolveDay(s.ctx, &ResolveDayInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal(0, output.EliminatedSeat)
	s.True(output.DefenseRound)
	s.Equal([]int{2, 5}, output.TiedSeats)
	s.Equal([]int{2, 5}, s.room.RevoteSeats)
	s.Empty(s.room.DayVotes, "the re-vote starts from a clean ballot")
	s.Equal(models.NightStageAnnounced, s.room.NightStage, "the day is still open")
}

func (s *GameServiceTestSuite) TestResolveDaySecondTieEliminatesNobody() {
	s.openDayRoom()
	s.room.RevoteSeats = []int{2, 5}
	s.castAll(2, 5)

	s.expectGetRoom()
	s.expectSaveRoom()
	output, err := s.gameService.ResolveDay(s.ctx, &ResolveDayInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal(0, output.EliminatedSeat)
	s.False(output.DefenseRound)
	s.Equal(models.PlayerStateAlive, s.room.PlayerBySeat(2).State)
	s.Equal(models.PlayerStateAlive, s.room.PlayerBySeat(5).State)
	s.Equal(models.NightStageShooting, s.room.NightStage)
	s.Empty(s.room.RevoteSeats)
}

func (s *GameServiceTestSuite) TestResolveDayEliminationEndsGame() {
	// black is already even with red; voting out one more red decides it
	for _, seat := range []int{7, 8, 9, 10} {
		s.room.PlayerBySeat(seat).State = models.PlayerStateDead
	}
	s.openDayRoom()
	s.castAll(5)

	s.expectGetRoom()
	s.expectSaveRoom()

	var increments []*userRepo.IncrementStatsInput
	s.mockUserRepo.EXPECT().
		IncrementStats(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.IncrementStatsInput) (*models.User, error) {
			increments = append(increments, input)
			return &models.User{ID: input.UserID}, nil
		}).
		Times(10)

	output, err := s.gameService.ResolveDay(s.ctx, &ResolveDayInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal(5, output.EliminatedSeat)
	s.True(output.GameEnded)
	s.Equal(models.RoomPhaseEnded, s.room.Phase)
	s.Equal(models.TeamBlack, s.room.Winner)
	s.Len(increments, 10)
}
