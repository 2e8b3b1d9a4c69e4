package pkg

import "github.com/google/uuid"

const (
	PrefixGame = "game_"
	PrefixSave = "save_"
)

// GenerateGameID - id for a live session.
func GenerateGameID() string {
	return PrefixGame + uuid.New().String()
}

// GenerateSaveID - id for a stored save.
func GenerateSaveID() string {
	return PrefixSave + uuid.New().String()
}
