package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func roomWithPlayers(states ...PlayerState) *Room {
	room := &Room{Phase: RoomPhaseLobby}
	for i, state := range states {
		room.Players = append(room.Players, &Player{
			UserID:   string(rune('a' + i)),
			Nickname: "Player",
			State:    state,
		})
	}
	return room
}

func TestIsQuorum(t *testing.T) {
	room := roomWithPlayers(
		PlayerStateReady, PlayerStateReady, PlayerStateReady, PlayerStateReady,
		PlayerStateReady, PlayerStateReady, PlayerStateReady, PlayerStateReady,
		PlayerStateReady, PlayerStateReady,
	)
	assert.True(t, room.IsQuorum(10))

	// one player flips back to not ready
	room.Players[3].State = PlayerStateNotReady
	assert.False(t, room.IsQuorum(10))

	// nine ready players out of nine members is not a quorum of ten
	room.Players = room.Players[:9]
	room.Players[3].State = PlayerStateReady
	assert.False(t, room.IsQuorum(10))
}

func TestAliveCount(t *testing.T) {
	room := &Room{
		Phase: RoomPhaseActive,
		Players: []*Player{
			{UserID: "a", Role: RoleDon, State: PlayerStateAlive},
			{UserID: "b", Role: RoleMafia, State: PlayerStateAlive},
			{UserID: "c", Role: RoleMafia, State: PlayerStateDead},
			{UserID: "d", Role: RoleCommissar, State: PlayerStateAlive},
			{UserID: "e", Role: RoleCivilian, State: PlayerStateAlive},
			{UserID: "f", Role: RoleCivilian, State: PlayerStatePreDead},
		},
	}

	assert.Equal(t, 2, room.CountBlack())
	assert.Equal(t, 2, room.AliveCount(TeamRed))
	assert.Len(t, room.AlivePlayers(), 4)
}

func TestTallyVotesUniqueMaximum(t *testing.T) {
	room := &Room{
		DayVotes: map[string]int{
			"a": 4, "b": 4, "c": 4, "d": 2, "e": 7,
		},
	}

	tally := room.TallyVotes()
	assert.False(t, tally.IsTie)
	assert.Equal(t, []int{4}, tally.TopSeats)
	assert.Equal(t, 3, tally.Counts[4])
}

func TestTallyVotesTie(t *testing.T) {
	// {A:3, B:3, C:1} among 7 voters is a tie between A and B
	room := &Room{
		DayVotes: map[string]int{
			"a": 1, "b": 1, "c": 1,
			"d": 2, "e": 2, "f": 2,
			"g": 3,
		},
	}

	tally := room.TallyVotes()
	assert.True(t, tally.IsTie)
	assert.Equal(t, []int{1, 2}, tally.TopSeats)
}

func TestRevoteAllowed(t *testing.T) {
	room := &Room{}
	assert.True(t, room.RevoteAllowed(5), "no restriction outside a re-vote")

	room.RevoteSeats = []int{1, 2}
	assert.True(t, room.RevoteAllowed(2))
	assert.False(t, room.RevoteAllowed(5))
}

func TestRoleIsBlack(t *testing.T) {
	assert.True(t, RoleMafia.IsBlack())
	assert.True(t, RoleDon.IsBlack())
	assert.False(t, RoleCivilian.IsBlack())
	assert.False(t, RoleCommissar.IsBlack())
	assert.False(t, RoleUnassigned.IsBlack())
}
