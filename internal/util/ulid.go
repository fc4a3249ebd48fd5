package util

import (
	"github.com/oklog/ulid/v2"
)

// NewID generates a new ULID string. Safe for concurrent use.
func NewID() string {
	return ulid.Make().String()
}

// NewPrefixedID returns prefix followed by a ULID, e.g. "SM01J..." for message sids.
func NewPrefixedID(prefix string) string {
	return prefix + NewID()
}
