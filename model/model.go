// Package model defines the capability contract a concrete type must satisfy
// to take part in polymorphic serialization.
package model

import (
	"github.com/polymodel/go-polymodel/attr"
)

// Identity uniquely names a concrete model type within the running process.
type Identity struct {
	// Namespace identifies the component defining the type,
	// conventionally its package import path.
	Namespace string
	// Name is the qualified type name within the namespace.
	Name string
}

// IsZero reports whether the identity is empty.
func (id Identity) IsZero() bool {
	return id.Namespace == "" && id.Name == ""
}

// String returns the identity in "namespace.Name" form.
func (id Identity) String() string {
	return id.Namespace + "." + id.Name
}

// Model is implemented by every value that can travel through the
// polymorphic pipeline.
//
// Implementations must report a stable identity derivable from the zero
// value, and DumpFields must return a freshly allocated tree holding
// JSON-compatible values only. Value equality is expected to be structural,
// so two values reconstructed from the same tree compare equal.
type Model interface {
	// Identity returns the stable namespace and qualified name of the type.
	Identity() Identity
	// DumpFields produces an attribute tree of the value's fields.
	DumpFields() (attr.Tree, error)
}
