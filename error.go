package polymodel

import (
	"errors"
	"fmt"

	"github.com/polymodel/go-polymodel/model"
)

// ErrNilModel is returned when encoding a nil model value.
var ErrNilModel = errors.New("nil model value")

// ErrNoIdentity is returned when a model reports an empty identity.
var ErrNoIdentity = errors.New("model reports an empty identity")

// ErrInvalidEncoding is returned when input bytes are not valid UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// DumpError represents an error when encoding a model value fails.
type DumpError struct {
	parent error
}

func errDump(parent error) error {
	if parent == nil {
		return nil
	}

	return DumpError{parent: parent}
}

// Unwrap returns the underlying error that caused the dump failure.
func (e DumpError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the dump error.
func (e DumpError) Error() string {
	return fmt.Sprintf("failed to dump model: %s", e.parent)
}

// ReservedKeyError is returned when a model's fields collide with a
// reserved metadata key.
type ReservedKeyError struct {
	Key string
}

// Error returns a string representation of the reserved key collision.
func (e ReservedKeyError) Error() string {
	return fmt.Sprintf("model field collides with reserved metadata key: %s", e.Key)
}

// MissingMetadataError is returned when a tree lacks a reserved metadata key
// or holds a non-string value under it.
type MissingMetadataError struct {
	Key string
}

// Error returns a string representation of the missing metadata error.
func (e MissingMetadataError) Error() string {
	return fmt.Sprintf("missing metadata key: %s", e.Key)
}

// UnknownTypeError is returned when a tree's identity does not resolve to a
// registered type.
type UnknownTypeError struct {
	ID     model.Identity
	parent error
}

func errUnknownType(id model.Identity, parent error) error {
	return UnknownTypeError{ID: id, parent: parent}
}

// Unwrap returns the underlying registry lookup error.
func (e UnknownTypeError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the unknown type error.
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown model type %s", e.ID)
}

// ValidationError is returned when the resolved type rejects the remaining
// fields. It wraps the concrete type's validation failure.
type ValidationError struct {
	ID     model.Identity
	parent error
}

func errValidation(id model.Identity, parent error) error {
	if parent == nil {
		return nil
	}

	return ValidationError{ID: id, parent: parent}
}

// Unwrap returns the concrete type's validation failure.
func (e ValidationError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the validation error.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.ID, e.parent)
}

// MalformedInputError is returned when text input is not valid JSON.
type MalformedInputError struct {
	parent error
}

func errMalformed(parent error) error {
	if parent == nil {
		return nil
	}

	return MalformedInputError{parent: parent}
}

// Unwrap returns the underlying parse error.
func (e MalformedInputError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the malformed input error.
func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.parent)
}

// UnsupportedInputError is returned when an input's shape matches no case
// for the active mode.
type UnsupportedInputError struct {
	Mode Mode
	Kind string
}

// Error returns a string representation of the unsupported input error.
func (e UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input kind %q for mode %s", e.Kind, e.Mode)
}

// UnsupportedModeError is returned when the mode is not one of the
// recognized dispatch modes.
type UnsupportedModeError struct {
	Mode Mode
}

// Error returns a string representation of the unsupported mode error.
func (e UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported mode: %s", e.Mode)
}
