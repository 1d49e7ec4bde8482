package models

import (
	"time"
)

// User holds the lifetime record for one chat-platform identity.
// Created on first contact, never deleted; only the counters change.
type User struct {
	// ID is the external chat platform user ID
	ID string

	// Nickname is the display name reported by the chat platform
	Nickname string

	// Wins is the number of games this user's team won
	Wins int

	// GamesPlayed is the total number of finished games
	GamesPlayed int

	// CreatedAt is when the user first contacted the bot
	CreatedAt time.Time
}
