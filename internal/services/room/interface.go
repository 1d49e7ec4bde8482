package room

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/aimafia/coordinator/internal/services/room Service

import "context"

// Service defines the room lifecycle operations consumed by the dialogue layer
type Service interface {
	// FindOrCreateUser resolves a chat-platform identity to a user record,
	// creating it on first contact
	FindOrCreateUser(ctx context.Context, input *FindOrCreateUserInput) (*FindOrCreateUserOutput, error)

	// CreateRoom allocates a new empty lobby room
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// FindRoom retrieves a room by ID
	FindRoom(ctx context.Context, input *FindRoomInput) (*FindRoomOutput, error)

	// RandomOpenRoom picks a random lobby-phase room; the output room is nil
	// when none exists
	RandomOpenRoom(ctx context.Context, input *RandomOpenRoomInput) (*RandomOpenRoomOutput, error)

	// ListOpenRooms retrieves every lobby-phase room
	ListOpenRooms(ctx context.Context, input *ListOpenRoomsInput) (*ListOpenRoomsOutput, error)

	// JoinRoom admits a user into a lobby room; idempotent for members
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LeaveRoom removes a lobby member, or forfeits a seated player once
	// the game is active
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// SetPlayerState flips a member between ready and not ready
	SetPlayerState(ctx context.Context, input *SetPlayerStateInput) (*SetPlayerStateOutput, error)

	// StartGame deals roles and seats and activates the room. A room that is
	// already active yields a no-op output, not an error.
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)
}
