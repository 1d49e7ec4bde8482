package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gameService "github.com/aimafia/coordinator/internal/services/game"
	syncService "github.com/aimafia/coordinator/internal/services/sync"
)

type recordShotRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	TargetSeat int    `json:"target_seat" binding:"required"`
}

func (h *Handler) recordShot(c *gin.Context) {
	var req recordShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.gameService.RecordShot(c.Request.Context(), &gameService.RecordShotInput{
		RoomID:        c.Param("id"),
		ShooterUserID: req.UserID,
		TargetSeat:    req.TargetSeat,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":         output.Room,
		"all_shots_in": output.AllShotsIn,
	})
}

type checkSeatRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	TargetSeat int    `json:"target_seat" binding:"required"`
}

func (h *Handler) checkSeat(c *gin.Context) {
	var req checkSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.gameService.CheckSeat(c.Request.Context(), &gameService.CheckSeatInput{
		RoomID:        c.Param("id"),
		CheckerUserID: req.UserID,
		TargetSeat:    req.TargetSeat,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checker_role": output.CheckerRole,
		"color":        output.Color,
		"is_commissar": output.IsCommissar,
	})
}

func (h *Handler) resolveNight(c *gin.Context) {
	output, err := h.gameService.ResolveNight(c.Request.Context(), &gameService.ResolveNightInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	// nobody died: the outcome is announced without a last-words turn
	h.armIf(c, output.EliminatedSeat == 0, c.Param("id"), syncService.ConditionNightResolved)

	c.JSON(http.StatusOK, gin.H{
		"room":            output.Room,
		"eliminated_seat": output.EliminatedSeat,
	})
}

type lastWordsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text"`
	Skip   bool   `json:"skip"`
}

func (h *Handler) submitLastWords(c *gin.Context) {
	var req lastWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.gameService.SubmitLastWords(c.Request.Context(), &gameService.SubmitLastWordsInput{
		RoomID: c.Param("id"),
		UserID: req.UserID,
		Text:   req.Text,
		Skip:   req.Skip,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.armIf(c, true, c.Param("id"), syncService.ConditionNightResolved)
	h.armIf(c, output.GameEnded, c.Param("id"), syncService.ConditionGameEnded)

	c.JSON(http.StatusOK, gin.H{
		"room":       output.Room,
		"text":       output.Text,
		"game_ended": output.GameEnded,
	})
}

type castVoteRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	TargetSeat int    `json:"target_seat" binding:"required"`
}

func (h *Handler) castVote(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.gameService.CastVote(c.Request.Context(), &gameService.CastVoteInput{
		RoomID:      c.Param("id"),
		VoterUserID: req.UserID,
		TargetSeat:  req.TargetSeat,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":         output.Room,
		"votes_cast":   output.VotesCast,
		"all_votes_in": output.AllVotesIn,
	})
}

func (h *Handler) resolveDay(c *gin.Context) {
	output, err := h.gameService.ResolveDay(c.Request.Context(), &gameService.ResolveDayInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.armIf(c, true, c.Param("id"), syncService.ConditionDayResolved)
	h.armIf(c, output.GameEnded, c.Param("id"), syncService.ConditionGameEnded)

	c.JSON(http.StatusOK, gin.H{
		"room":            output.Room,
		"eliminated_seat": output.EliminatedSeat,
		"defense_round":   output.DefenseRound,
		"tied_seats":      output.TiedSeats,
		"game_ended":      output.GameEnded,
	})
}
