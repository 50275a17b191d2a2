// Package uuid issues the time-ordered identifiers attached to requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. IDs issued later sort after earlier ones,
// so request logs can be ordered by ID alone.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock or entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Normalize returns s in canonical lowercase form when it is a valid UUID.
func Normalize(s string) (string, bool) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
