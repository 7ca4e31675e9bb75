package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 21
)

// GenerateID gera os IDs dos snapshots (VARCHAR(21) no banco)
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
