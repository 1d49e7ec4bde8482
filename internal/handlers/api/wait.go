package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	syncService "github.com/aimafia/coordinator/internal/services/sync"
)

// waitCondition is the long-poll endpoint: it blocks until the condition
// holds, the client goes away or the poll TTL expires
func (h *Handler) waitCondition(c *gin.Context) {
	output, err := h.syncService.WaitCondition(c.Request.Context(), &syncService.WaitConditionInput{
		RoomID:    c.Param("id"),
		Condition: syncService.Condition(c.Query("condition")),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": output.Room})
}

type armPollerRequest struct {
	Condition string `json:"condition" binding:"required"`
}

// armPoller re-arms a background poller explicitly. The mutating endpoints
// arm pollers themselves; this exists so the dialogue layer can recover
// after a coordinator restart dropped in-flight polls.
func (h *Handler) armPoller(c *gin.Context) {
	var req armPollerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortBadRequest(c, err)
		return
	}

	output, err := h.syncService.ArmPoller(c.Request.Context(), &syncService.ArmPollerInput{
		RoomID:    c.Param("id"),
		Condition: syncService.Condition(req.Condition),
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"already_armed": output.AlreadyArmed})
}
