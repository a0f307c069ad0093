package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// idBytes keeps run IDs short enough for log lines while staying unique.
const idBytes = 16

// Generator creates opaque IDs for settlement runs and outbound
// notifications.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator issues hex-encoded random IDs.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	raw := make([]byte, idBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
