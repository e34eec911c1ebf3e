// Package clock abstracts time so edit sessions can be stamped deterministically in tests.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/raidtemplate/internal/common/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system clock, always in UTC
type SystemClock struct{}

// New returns the system clock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
