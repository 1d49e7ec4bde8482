package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/aimafia/coordinator/internal/repositories/user Repository

import (
	"context"

	"github.com/aimafia/coordinator/internal/models"
)

// Repository defines the interface for user registry persistence
type Repository interface {
	// SaveUser persists a user record
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by external ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// IncrementStats bumps a user's lifetime counters
	IncrementStats(ctx context.Context, input *IncrementStatsInput) (*models.User, error)
}
