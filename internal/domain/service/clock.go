package service

import "time"

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the actual current time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NewSystemClock is the fx constructor for the default Clock.
func NewSystemClock() Clock {
	return SystemClock{}
}
