package models

import (
	"time"
)

// RoomPhase represents the lifecycle phase of a room
type RoomPhase string

const (
	// RoomPhaseLobby indicates a room collecting players
	RoomPhaseLobby RoomPhase = "lobby"

	// RoomPhaseActive indicates a game in progress
	RoomPhaseActive RoomPhase = "active"

	// RoomPhaseEnded indicates a finished game
	RoomPhaseEnded RoomPhase = "ended"
)

// NightStage is the sub-state machine a night runs through while the room
// phase is active
type NightStage string

const (
	// NightStageShooting indicates the black team is collecting shots
	NightStageShooting NightStage = "shooting"

	// NightStageChecking indicates the commissar and don may run their checks
	NightStageChecking NightStage = "checking"

	// NightStageResolving indicates shots have been tallied and the victim,
	// if any, is taking their last-words turn
	NightStageResolving NightStage = "resolving"

	// NightStageAnnounced indicates the night outcome has been published
	// and the day may begin
	NightStageAnnounced NightStage = "announced"
)

// Team identifies a faction for win accounting
type Team string

const (
	// TeamBlack is mafia plus don
	TeamBlack Team = "black"

	// TeamRed is everyone else
	TeamRed Team = "red"
)

// Room is the shared game aggregate. It is the unit of atomicity: every
// mutation loads the whole document, transforms it in memory and saves it
// back through the room repository.
type Room struct {
	// ID is the externally addressable room identifier
	ID string

	// Name is the display name given at creation
	Name string

	// Phase is the room lifecycle phase
	Phase RoomPhase

	// NightStage is meaningful only while Phase is active
	NightStage NightStage

	// Players is ordered by join order in the lobby and by seat order once
	// the game starts
	Players []*Player

	// DayVotes maps a living voter's user ID to the seat they voted against
	DayVotes map[string]int

	// RevoteSeats restricts day voting to the listed seats after a tie.
	// Empty outside a re-vote round.
	RevoteSeats []int

	// PendingDeathSeat is the seat eliminated during the current night,
	// 0 when nobody was eliminated. Cleared after the day announcement.
	PendingDeathSeat int

	// LastWords is the transient night-phase scratch text of the pre-dead player
	LastWords string

	// Winner is set when the room ends
	Winner Team

	// Version increments on every save. Diagnostic only.
	Version int64

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last saved
	UpdatedAt time.Time
}

// Player returns the member with the given user ID, or nil
func (r *Room) Player(userID string) *Player {
	for _, p := range r.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// PlayerBySeat returns the player holding the given seat, or nil
func (r *Room) PlayerBySeat(seat int) *Player {
	for _, p := range r.Players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// ReadyCount returns the number of lobby members marked ready
func (r *Room) ReadyCount() int {
	count := 0
	for _, p := range r.Players {
		if p.State == PlayerStateReady {
			count++
		}
	}
	return count
}

// IsQuorum reports whether all n lobby slots are filled and ready.
// Evaluated fresh on every call; readiness can flip back.
func (r *Room) IsQuorum(n int) bool {
	return len(r.Players) == n && r.ReadyCount() == n
}

// AliveCount returns the number of living players on the given team
func (r *Room) AliveCount(team Team) int {
	count := 0
	for _, p := range r.Players {
		if p.State != PlayerStateAlive {
			continue
		}
		if (team == TeamBlack) == p.Role.IsBlack() {
			count++
		}
	}
	return count
}

// CountBlack returns the number of living black-team players
func (r *Room) CountBlack() int {
	return r.AliveCount(TeamBlack)
}

// AlivePlayers returns the living players in seat order
func (r *Room) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.State == PlayerStateAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// VoteTally is the outcome of counting day votes
type VoteTally struct {
	// Counts maps a seat to the number of votes it received
	Counts map[int]int

	// TopSeats holds every seat sharing the highest count, ascending
	TopSeats []int

	// IsTie is true when more than one seat shares the highest count
	IsTie bool
}

// TallyVotes counts the recorded day votes and finds the maximum and ties
func (r *Room) TallyVotes() VoteTally {
	counts := make(map[int]int)
	for _, seat := range r.DayVotes {
		counts[seat]++
	}

	maxVotes := 0
	var top []int
	for seat, count := range counts {
		switch {
		case count > maxVotes:
			maxVotes = count
			top = []int{seat}
		case count == maxVotes:
			top = append(top, seat)
		}
	}
	sortSeats(top)

	return VoteTally{
		Counts:   counts,
		TopSeats: top,
		IsTie:    len(top) > 1,
	}
}

// RevoteAllowed reports whether the seat is a valid target for the current
// voting round
func (r *Room) RevoteAllowed(seat int) bool {
	if len(r.RevoteSeats) == 0 {
		return true
	}
	for _, s := range r.RevoteSeats {
		if s == seat {
			return true
		}
	}
	return false
}

// insertion sort; vote slices hold at most N seats
func sortSeats(seats []int) {
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && seats[j] < seats[j-1]; j-- {
			seats[j], seats[j-1] = seats[j-1], seats[j]
		}
	}
}
