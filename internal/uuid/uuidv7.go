// Package uuid generates time-ordered identifiers for primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 embeds a millisecond timestamp in
// its high bits, so rows created close together sort close together and
// primary key indexes stay append-mostly.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// The entropy source failed; a random UUIDv4 still yields a
		// unique key, just without the time ordering.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version. Lookups use
// this to short-circuit malformed IDs before they reach the database,
// where a bad uuid literal would fail the query instead of finding nothing.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
