// Package envelope provides Update, a generic wrapper holding exactly one
// polymorphically-typed model value.
package envelope

import (
	"fmt"

	polymodel "github.com/polymodel/go-polymodel"
	"github.com/polymodel/go-polymodel/attr"
	"github.com/polymodel/go-polymodel/model"
	"github.com/polymodel/go-polymodel/registry"
)

const (
	namespace = "github.com/polymodel/go-polymodel/envelope"
	qualName  = "Update"

	// modelKey is the tree field holding the wrapped value.
	modelKey = "model"
)

// Update wraps a single model value. The wrapped value is serialized through
// the polymorphic pipeline, so decoding recovers its concrete type from data
// alone. Two updates are equal exactly when their wrapped values are equal.
type Update[T model.Model] struct {
	Model T
}

// New creates an Update holding the given model value.
func New[T model.Model](m T) Update[T] {
	return Update[T]{Model: m}
}

// Identity returns the envelope's own type identity.
// Every instantiation shares one identity; the wrapped value carries its
// own inside the nested tree.
func (u Update[T]) Identity() model.Identity {
	return model.Identity{Namespace: namespace, Name: qualName}
}

// DumpFields nests the wrapped value's self-describing tree under the
// "model" key.
func (u Update[T]) DumpFields() (attr.Tree, error) {
	inner, err := polymodel.ToTree(u.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to dump wrapped model: %w", err)
	}

	return attr.Tree{modelKey: inner}, nil
}

// MarshalJSON implements json.Marshaler.
func (u Update[T]) MarshalJSON() ([]byte, error) {
	fields, err := u.DumpFields()
	if err != nil {
		return nil, err
	}

	data, err := attr.EncodeJSON(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update: %w", err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. The wrapped field is routed
// through the text-mode dispatch, so the concrete type is recovered from
// the nested metadata.
func (u *Update[T]) UnmarshalJSON(data []byte) error {
	fields, err := attr.DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode update: %w", err)
	}

	inner, err := fields.Tree(modelKey)
	if err != nil {
		return fmt.Errorf("failed to decode update: %w", err)
	}

	update, err := Validate[T](polymodel.TreeInput(inner), polymodel.ModeText)
	if err != nil {
		return err
	}

	*u = update

	return nil
}

// Validate constructs an Update from raw field input, routing through the
// mode-aware dispatch.
func Validate[T model.Model](in polymodel.Input, mode polymodel.Mode) (Update[T], error) {
	resolved, err := polymodel.Validate(in, mode)
	if err != nil {
		return Update[T]{}, err
	}

	typed, ok := resolved.(T)
	if !ok {
		return Update[T]{}, ModelTypeError{ID: resolved.Identity()}
	}

	return Update[T]{Model: typed}, nil
}

func validateUpdate(fields attr.Tree) (Update[model.Model], error) {
	inner, err := fields.Tree(modelKey)
	if err != nil {
		return Update[model.Model]{}, err
	}

	resolved, err := polymodel.FromTree(inner)
	if err != nil {
		return Update[model.Model]{}, err
	}

	return Update[model.Model]{Model: resolved}, nil
}

// The interface-typed instantiation registers itself so an Update can travel
// through the polymorphic path like any other model.
//
//nolint:gochecknoinits
func init() {
	registry.MustAdd(registry.Default(), validateUpdate)
}
