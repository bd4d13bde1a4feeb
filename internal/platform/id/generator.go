package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates run identifiers that sort by start time.
type Generator interface {
	NewID() (string, error)
}

type RunGenerator struct {
	now func() time.Time
}

func NewRunGenerator() *RunGenerator {
	return &RunGenerator{now: time.Now}
}

// NewID returns "<UTC timestamp>-<8 hex chars>", e.g. "20261019T060000Z-9f86d081".
func (g *RunGenerator) NewID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return g.now().UTC().Format("20060102T150405Z") + "-" + hex.EncodeToString(buf), nil
}
