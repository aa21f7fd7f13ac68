package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	defaultSize = 8
	maxLength   = 64
)

// Generator creates opaque ids used to correlate log lines of one request.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns hex encoded random ids of size bytes.
type RandomGenerator struct {
	size int
}

func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = defaultSize
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Valid reports whether an id supplied by a caller is safe to echo into logs
// and headers: 1 to 64 characters of letters, digits, '-' or '_'.
func Valid(value string) bool {
	if value == "" || len(value) > maxLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
