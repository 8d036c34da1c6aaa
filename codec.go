package polymodel

import (
	"github.com/polymodel/go-polymodel/registry"
)

const (
	// NamespaceKey is the reserved tree key carrying the originating
	// type's namespace.
	NamespaceKey = "__module__"
	// NameKey is the reserved tree key carrying the originating type's
	// qualified name.
	NameKey = "__qualname__"
)

// Codec binds the encoder and resolver to a registry.
// A Codec is safe for concurrent use.
type Codec struct {
	reg *registry.Registry
}

// NewCodec creates a Codec resolving types against the given registry.
func NewCodec(reg *registry.Registry) *Codec {
	return &Codec{reg: reg}
}

// defaultCodec resolves against the process-wide registry.
//
//nolint:gochecknoglobals
var defaultCodec = NewCodec(registry.Default())

// Default returns the Codec bound to the process-wide registry.
func Default() *Codec {
	return defaultCodec
}
