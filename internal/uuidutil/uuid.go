package uuidutil

import (
	"strings"

	"github.com/google/uuid"
)

// New generates a new random UUID v4.
func New() uuid.UUID {
	return uuid.New()
}

// Short returns the first eight hex characters of a new UUID, handy for
// run identifiers embedded in file names.
func Short() string {
	s := uuid.New().String()
	return strings.ReplaceAll(s, "-", "")[:8]
}

// IsValid checks if a string is a valid UUID format.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
