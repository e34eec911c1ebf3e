// Package uuid wraps google/uuid behind an interface for deterministic tests.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/raidtemplate/internal/common/uuid Generator

// Generator produces unique string identifiers
type Generator interface {
	NewID() string
}

// GoogleGenerator implements Generator with random v4 UUIDs
type GoogleGenerator struct{}

// New returns a Generator backed by google/uuid
func New() *GoogleGenerator {
	return &GoogleGenerator{}
}

// NewID returns a new random UUID string
func (g *GoogleGenerator) NewID() string {
	return uuid.NewString()
}
