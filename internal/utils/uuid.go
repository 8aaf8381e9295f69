// Package utils holds small helpers shared by the commands.
package utils

import "github.com/google/uuid"

// NewRunID returns the identifier attached to every log line of one command
// run. Run ids are UUIDv7 so they sort by start time; a random v4 id is
// returned when the v7 clock source fails.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
