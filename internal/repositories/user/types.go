package user

import "github.com/aimafia/coordinator/internal/models"

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// IncrementStatsInput contains parameters for bumping lifetime counters
type IncrementStatsInput struct {
	UserID      string
	GamesPlayed int
	Wins        int
}
