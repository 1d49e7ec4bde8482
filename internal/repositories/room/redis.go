package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aimafia/coordinator/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix = "room:"
	openRoomsKey  = "open_rooms"

	// Stale index entries are re-drawn this many times before giving up
	maxRandomDraws = 5
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrNoOpenRooms is returned when no lobby-phase room exists. Callers
	// treat this as an expected empty result, not a failure.
	ErrNoOpenRooms = errors.New("no open rooms")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRoom persists a room aggregate to Redis and keeps the open-rooms
// index in step with the room phase. The version counter is stamped here.
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	roomDoc := input.Room

	if roomDoc.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	roomDoc.Version++

	// Marshal the room to JSON
	roomJSON, err := json.Marshal(roomDoc)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, roomDoc.ID)
	pipe.Set(ctx, roomKey, roomJSON, 0)

	// Only lobby-phase rooms are joinable
	if roomDoc.Phase == models.RoomPhaseLobby {
		pipe.SAdd(ctx, openRoomsKey, roomDoc.ID)
	} else {
		pipe.SRem(ctx, openRoomsKey, roomDoc.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	// Unmarshal the room from JSON
	var roomDoc models.Room
	if err := json.Unmarshal([]byte(roomJSON), &roomDoc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &roomDoc, nil
}

// DeleteRoom removes a room from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	pipe.Del(ctx, roomKey)
	pipe.SRem(ctx, openRoomsKey, input.RoomID)

	// Execute the transaction
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// GetRandomOpenRoom picks a lobby-phase room uniformly at random using the
// open-rooms set. Index entries can briefly outlive their room; stale draws
// are dropped from the set and re-drawn a bounded number of times.
func (r *redisRepository) GetRandomOpenRoom(ctx context.Context) (*models.Room, error) {
	for i := 0; i < maxRandomDraws; i++ {
		roomID, err := r.client.SRandMember(ctx, openRoomsKey).Result()
		if err != nil {
			if err == redis.Nil {
				return nil, ErrNoOpenRooms
			}
			return nil, fmt.Errorf("failed to pick open room: %w", err)
		}

		roomDoc, err := r.GetRoom(ctx, &GetRoomInput{
			RoomID: roomID,
		})
		if err != nil {
			if errors.Is(err, ErrRoomNotFound) {
				r.client.SRem(ctx, openRoomsKey, roomID)
				continue
			}
			return nil, err
		}

		if roomDoc.Phase != models.RoomPhaseLobby {
			r.client.SRem(ctx, openRoomsKey, roomID)
			continue
		}

		return roomDoc, nil
	}

	return nil, ErrNoOpenRooms
}

// ListOpenRooms retrieves all lobby-phase rooms from Redis
func (r *redisRepository) ListOpenRooms(ctx context.Context) (*ListOpenRoomsOutput, error) {
	roomIDs, err := r.client.SMembers(ctx, openRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open room IDs: %w", err)
	}

	// If there are no open rooms, return an empty slice
	if len(roomIDs) == 0 {
		return &ListOpenRoomsOutput{
			Rooms: []*models.Room{},
		}, nil
	}

	// Get all rooms in parallel using a pipeline
	pipe := r.client.Pipeline()
	roomCommands := make(map[string]*redis.StringCmd)

	for _, roomID := range roomIDs {
		roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, roomID)
		roomCommands[roomID] = pipe.Get(ctx, roomKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get open rooms: %w", err)
	}

	// Process the results
	rooms := make([]*models.Room, 0, len(roomIDs))
	for roomID, cmd := range roomCommands {
		roomJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Room was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get room %s: %w", roomID, err)
		}

		var roomDoc models.Room
		if err := json.Unmarshal([]byte(roomJSON), &roomDoc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room %s: %w", roomID, err)
		}

		rooms = append(rooms, &roomDoc)
	}

	return &ListOpenRoomsOutput{
		Rooms: rooms,
	}, nil
}
