// Package polymodel provides polymorphic, self-describing serialization for
// model values: encoding embeds the originating type's identity in the
// produced tree, so decoding recovers the exact concrete type from data
// alone.
//
// See the [github.com/polymodel/go-polymodel/envelope] package for a generic
// wrapper whose single field travels through this pipeline, and the
// [github.com/polymodel/go-polymodel/store] package for persisting encoded
// values in a key-value backend.
package polymodel
