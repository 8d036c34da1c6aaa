package registry

import (
	"errors"
	"fmt"

	"github.com/polymodel/go-polymodel/model"
)

// ErrEmptyIdentity is returned when registering with a zero identity.
var ErrEmptyIdentity = errors.New("empty type identity")

// ErrNilValidator is returned when registering a nil validator.
var ErrNilValidator = errors.New("nil validator")

// NotRegisteredError is returned when no validator is registered for an identity.
type NotRegisteredError struct {
	ID model.Identity
}

// Error returns a string representation of the lookup failure.
func (e NotRegisteredError) Error() string {
	return fmt.Sprintf("no type registered for %s", e.ID)
}

// AlreadyRegisteredError is returned when an identity is registered twice.
type AlreadyRegisteredError struct {
	ID model.Identity
}

// Error returns a string representation of the duplicate registration.
func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("type already registered for %s", e.ID)
}
