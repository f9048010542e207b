package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a new unique id for a game session.
func GenerateSessionID() string {
	return uuid.NewString()
}
