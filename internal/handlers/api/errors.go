package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	gameService "github.com/aimafia/coordinator/internal/services/game"
	roomService "github.com/aimafia/coordinator/internal/services/room"
	syncService "github.com/aimafia/coordinator/internal/services/sync"
)

// abortWithError maps a service sentinel error onto an HTTP status and
// terminates the request
func (h *Handler) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, roomService.ErrRoomNotFound),
		errors.Is(err, gameService.ErrRoomNotFound),
		errors.Is(err, syncService.ErrRoomNotFound),
		errors.Is(err, roomService.ErrPlayerNotFound),
		errors.Is(err, gameService.ErrPlayerNotFound):
		status = http.StatusNotFound

	case errors.Is(err, syncService.ErrUnknownCondition),
		errors.Is(err, gameService.ErrInvalidSeat):
		status = http.StatusBadRequest

	case errors.Is(err, roomService.ErrRoomFull),
		errors.Is(err, roomService.ErrInvalidRoomPhase),
		errors.Is(err, roomService.ErrInvalidState),
		errors.Is(err, roomService.ErrNotEnoughPlayers),
		errors.Is(err, gameService.ErrInvalidRoomPhase),
		errors.Is(err, gameService.ErrInvalidNightStage),
		errors.Is(err, gameService.ErrNotBlackTeam),
		errors.Is(err, gameService.ErrAlreadyShot),
		errors.Is(err, gameService.ErrNotChecker),
		errors.Is(err, gameService.ErrPlayerDead),
		errors.Is(err, gameService.ErrNotPreDead),
		errors.Is(err, gameService.ErrVoteRestricted),
		errors.Is(err, gameService.ErrVotingIncomplete):
		status = http.StatusConflict

	case errors.Is(err, syncService.ErrPollExpired):
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
