package polymodel

import (
	"unicode/utf8"

	"github.com/polymodel/go-polymodel/attr"
	"github.com/polymodel/go-polymodel/model"
)

// FromTree reads the reserved metadata keys from a copy of the tree, looks
// the identity up in the registry and validates the remaining fields into a
// value of the original concrete type.
// The caller's tree is never mutated.
func (c *Codec) FromTree(tree attr.Tree) (model.Model, error) {
	fields := tree.Clone()

	namespace, err := popMetadata(fields, NamespaceKey)
	if err != nil {
		return nil, err
	}

	name, err := popMetadata(fields, NameKey)
	if err != nil {
		return nil, err
	}

	id := model.Identity{Namespace: namespace, Name: name}

	validate, err := c.reg.Lookup(id)
	if err != nil {
		return nil, errUnknownType(id, err)
	}

	resolved, err := validate(fields)
	if err != nil {
		return nil, errValidation(id, err)
	}

	return resolved, nil
}

// FromText parses JSON text and resolves the resulting tree.
func (c *Codec) FromText(text string) (model.Model, error) {
	tree, err := attr.DecodeJSON([]byte(text))
	if err != nil {
		return nil, errMalformed(err)
	}

	return c.FromTree(tree)
}

// FromBytes decodes UTF-8 JSON bytes and resolves the resulting tree.
func (c *Codec) FromBytes(data []byte) (model.Model, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	return c.FromText(string(data))
}

func popMetadata(fields attr.Tree, key string) (string, error) {
	value, ok := fields[key]
	if !ok {
		return "", MissingMetadataError{Key: key}
	}

	str, ok := value.(string)
	if !ok {
		return "", MissingMetadataError{Key: key}
	}

	delete(fields, key)

	return str, nil
}

// FromTree resolves the tree with the default Codec.
func FromTree(tree attr.Tree) (model.Model, error) {
	return defaultCodec.FromTree(tree)
}

// FromText resolves JSON text with the default Codec.
func FromText(text string) (model.Model, error) {
	return defaultCodec.FromText(text)
}

// FromBytes resolves UTF-8 JSON bytes with the default Codec.
func FromBytes(data []byte) (model.Model, error) {
	return defaultCodec.FromBytes(data)
}
