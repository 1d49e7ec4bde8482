package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aimafia/coordinator/internal/models"
	roomService "github.com/aimafia/coordinator/internal/services/room"
	syncService "github.com/aimafia/coordinator/internal/services/sync"
)

type findOrCreateUserRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Nickname string `json:"nickname"`
}

func (h *Handler) findOrCreateUser(c *gin.Context) {
	var req findOrCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.roomService.FindOrCreateUser(c.Request.Context(), &roomService.FindOrCreateUserInput{
		UserID:   req.UserID,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"user":    output.User,
		"created": output.Created,
	})
}

type createRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.roomService.CreateRoom(c.Request.Context(), &roomService.CreateRoomInput{
		Name: req.Name,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"room": output.Room})
}

func (h *Handler) findRoom(c *gin.Context) {
	output, err := h.roomService.FindRoom(c.Request.Context(), &roomService.FindRoomInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": output.Room})
}

func (h *Handler) listOpenRooms(c *gin.Context) {
	output, err := h.roomService.ListOpenRooms(c.Request.Context(), &roomService.ListOpenRoomsInput{})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": output.Rooms})
}

func (h *Handler) randomOpenRoom(c *gin.Context) {
	output, err := h.roomService.RandomOpenRoom(c.Request.Context(), &roomService.RandomOpenRoomInput{})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if output.Room == nil {
		c.JSON(http.StatusNotFound, gin.H{"room": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": output.Room})
}

type joinRoomRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	Nickname      string `json:"nickname"`
	SessionHandle string `json:"session_handle"`
	ChatID        int64  `json:"chat_id"`
}

func (h *Handler) joinRoom(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.roomService.JoinRoom(c.Request.Context(), &roomService.JoinRoomInput{
		RoomID:        c.Param("id"),
		UserID:        req.UserID,
		Nickname:      req.Nickname,
		SessionHandle: req.SessionHandle,
		ChatID:        req.ChatID,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":           output.Room,
		"already_member": output.AlreadyMember,
	})
}

type leaveRoomRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *Handler) leaveRoom(c *gin.Context) {
	var req leaveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.roomService.LeaveRoom(c.Request.Context(), &roomService.LeaveRoomInput{
		RoomID: c.Param("id"),
		UserID: req.UserID,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.armIf(c, output.GameEnded, c.Param("id"), syncService.ConditionGameEnded)

	c.JSON(http.StatusOK, gin.H{
		"room":         output.Room,
		"forfeited":    output.Forfeited,
		"room_deleted": output.RoomDeleted,
		"game_ended":   output.GameEnded,
	})
}

type setReadyRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Ready  *bool  `json:"ready" binding:"required"`
}

func (h *Handler) setReady(c *gin.Context) {
	var req setReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	state := models.PlayerStateNotReady
	if *req.Ready {
		state = models.PlayerStateReady
	}

	output, err := h.roomService.SetPlayerState(c.Request.Context(), &roomService.SetPlayerStateInput{
		RoomID: c.Param("id"),
		UserID: req.UserID,
		State:  state,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.armIf(c, output.QuorumReached, c.Param("id"), syncService.ConditionLobbyQuorum)

	c.JSON(http.StatusOK, gin.H{
		"room":           output.Room,
		"quorum_reached": output.QuorumReached,
	})
}

func (h *Handler) startGame(c *gin.Context) {
	output, err := h.roomService.StartGame(c.Request.Context(), &roomService.StartGameInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.armIf(c, !output.AlreadyActive, c.Param("id"), syncService.ConditionGameStarted)

	c.JSON(http.StatusOK, gin.H{
		"room":           output.Room,
		"already_active": output.AlreadyActive,
	})
}
