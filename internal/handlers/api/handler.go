package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	gameService "github.com/aimafia/coordinator/internal/services/game"
	roomService "github.com/aimafia/coordinator/internal/services/room"
	syncService "github.com/aimafia/coordinator/internal/services/sync"
)

var (
	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilRoomService is returned when no room service is provided
	ErrNilRoomService = errors.New("room service cannot be nil")

	// ErrNilGameService is returned when no game service is provided
	ErrNilGameService = errors.New("game service cannot be nil")

	// ErrNilSyncService is returned when no sync service is provided
	ErrNilSyncService = errors.New("sync service cannot be nil")
)

// Config holds configuration for the HTTP gateway
type Config struct {
	RoomService roomService.Service
	GameService gameService.Service
	SyncService syncService.Service
	Logger      zerolog.Logger
}

// Handler translates HTTP requests from the dialogue layer into service
// calls. It binds JSON, calls exactly one operation and maps sentinel
// errors onto status codes; no game rules live here.
type Handler struct {
	roomService roomService.Service
	gameService gameService.Service
	syncService syncService.Service
	logger      zerolog.Logger
}

// New creates a new gateway handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomService == nil {
		return nil, ErrNilRoomService
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.SyncService == nil {
		return nil, ErrNilSyncService
	}

	return &Handler{
		roomService: cfg.RoomService,
		gameService: cfg.GameService,
		syncService: cfg.SyncService,
		logger:      cfg.Logger,
	}, nil
}

// RegisterRoutes mounts the operation surface on the router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/users/find-or-create", h.findOrCreateUser)

	rooms := r.Group("/rooms")
	rooms.POST("", h.createRoom)
	rooms.GET("/open", h.listOpenRooms)
	rooms.GET("/random-open", h.randomOpenRoom)
	rooms.GET("/:id", h.findRoom)
	rooms.POST("/:id/join", h.joinRoom)
	rooms.POST("/:id/leave", h.leaveRoom)
	rooms.POST("/:id/ready", h.setReady)
	rooms.POST("/:id/start", h.startGame)
	rooms.POST("/:id/shoot", h.recordShot)
	rooms.POST("/:id/check", h.checkSeat)
	rooms.POST("/:id/resolve-night", h.resolveNight)
	rooms.POST("/:id/last-words", h.submitLastWords)
	rooms.POST("/:id/vote", h.castVote)
	rooms.POST("/:id/resolve-day", h.resolveDay)
	rooms.GET("/:id/wait", h.waitCondition)
	rooms.POST("/:id/arm", h.armPoller)
}

// armIf starts a background poller for a condition that just became true.
// Arming is best-effort; a failure is logged and never surfaced to the
// caller whose action succeeded.
func (h *Handler) armIf(c *gin.Context, became bool, roomID string, condition syncService.Condition) {
	if !became {
		return
	}
	_, err := h.syncService.ArmPoller(c.Request.Context(), &syncService.ArmPollerInput{
		RoomID:    roomID,
		Condition: condition,
	})
	if err != nil {
		h.logger.Error().Err(err).
			Str("room_id", roomID).
			Str("condition", string(condition)).
			Msg("failed to arm poller")
	}
}
