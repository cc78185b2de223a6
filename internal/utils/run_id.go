package utils

import "github.com/google/uuid"

// NewRunID returns an identifier for one setup run. It is a time-ordered
// UUIDv7 so log records from successive runs sort naturally, falling back to
// a random UUIDv4.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
