package attr

import (
	"fmt"
)

// MissingFieldError is returned when a tree lacks a requested field.
type MissingFieldError struct {
	Key string
}

// Error returns a string representation of the missing field error.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Key)
}

// FieldTypeError is returned when a field holds a value of an unexpected kind.
type FieldTypeError struct {
	Key  string
	Want string
	Got  any
}

// Error returns a string representation of the field type error.
func (e FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: expected %s, got %T", e.Key, e.Want, e.Got)
}

// DecodeError is returned when text cannot be parsed into a tree.
type DecodeError struct {
	parent error
}

func errDecode(parent error) error {
	if parent == nil {
		return nil
	}

	return DecodeError{parent: parent}
}

// Unwrap returns the underlying parse error.
func (e DecodeError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the decode error.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode tree: %s", e.parent)
}

// EncodeError is returned when a tree cannot be rendered as text.
type EncodeError struct {
	parent error
}

func errEncode(parent error) error {
	if parent == nil {
		return nil
	}

	return EncodeError{parent: parent}
}

// Unwrap returns the underlying marshal error.
func (e EncodeError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the encode error.
func (e EncodeError) Error() string {
	return fmt.Sprintf("failed to encode tree: %s", e.parent)
}
