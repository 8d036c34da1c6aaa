package store

import (
	"errors"
)

// ErrNotFound is returned when nothing is stored under the requested name.
var ErrNotFound = errors.New("not found")

// ErrInvalidName is returned for empty names or names with a leading or
// trailing slash.
var ErrInvalidName = errors.New("invalid name")
