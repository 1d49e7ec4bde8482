package sync

import "github.com/aimafia/coordinator/internal/models"

// Condition is a collective state a session can wait on. Each condition is
// a pure predicate over a freshly loaded room.
type Condition string

const (
	// ConditionLobbyQuorum fires when every lobby slot is filled and ready
	ConditionLobbyQuorum Condition = "lobby_quorum"

	// ConditionGameStarted fires once roles and seats have been dealt
	ConditionGameStarted Condition = "game_started"

	// ConditionNightResolved fires when the night outcome has been announced
	// and the day vote is open
	ConditionNightResolved Condition = "night_resolved"

	// ConditionDayResolved fires when the day tally has run: the next night
	// began, a defense round opened, or the game ended
	ConditionDayResolved Condition = "day_resolved"

	// ConditionGameEnded fires when a team has won
	ConditionGameEnded Condition = "game_ended"
)

// Valid reports whether the condition is a member of the closed set
func (c Condition) Valid() bool {
	switch c {
	case ConditionLobbyQuorum, ConditionGameStarted, ConditionNightResolved,
		ConditionDayResolved, ConditionGameEnded:
		return true
	}
	return false
}

// Met evaluates the condition against a room snapshot
func (c Condition) Met(r *models.Room, roomSize int) bool {
	switch c {
	case ConditionLobbyQuorum:
		return r.IsQuorum(roomSize)

	case ConditionGameStarted:
		return r.Phase != models.RoomPhaseLobby

	case ConditionNightResolved:
		if r.Phase == models.RoomPhaseEnded {
			return true
		}
		return r.Phase == models.RoomPhaseActive && r.NightStage == models.NightStageAnnounced

	case ConditionDayResolved:
		if r.Phase == models.RoomPhaseEnded {
			return true
		}
		if r.Phase != models.RoomPhaseActive {
			return false
		}
		return r.NightStage == models.NightStageShooting || len(r.RevoteSeats) > 0

	case ConditionGameEnded:
		return r.Phase == models.RoomPhaseEnded
	}
	return false
}
