// Package uuid generates time-ordered identifiers for records and rows.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 sorts by creation time, so records
// created without a client-supplied id keep their insertion order when
// listed by id.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock sequence cannot be read
		return googleuuid.NewString()
	}
	return id.String()
}
