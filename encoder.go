package polymodel

import (
	"github.com/polymodel/go-polymodel/attr"
	"github.com/polymodel/go-polymodel/model"
)

// ToTree dumps the model's fields into an attribute tree and injects the
// reserved metadata keys identifying the originating type.
// The model value itself is never mutated.
func (c *Codec) ToTree(m model.Model) (attr.Tree, error) {
	if m == nil {
		return nil, errDump(ErrNilModel)
	}

	id := m.Identity()
	if id.IsZero() {
		return nil, errDump(ErrNoIdentity)
	}

	fields, err := m.DumpFields()
	if err != nil {
		return nil, errDump(err)
	}

	for _, key := range []string{NamespaceKey, NameKey} {
		if _, ok := fields[key]; ok {
			return nil, errDump(ReservedKeyError{Key: key})
		}
	}

	tree := fields.Clone()
	tree[NamespaceKey] = id.Namespace
	tree[NameKey] = id.Name

	return tree, nil
}

// ToBytes encodes the model as self-describing UTF-8 JSON.
func (c *Codec) ToBytes(m model.Model) ([]byte, error) {
	tree, err := c.ToTree(m)
	if err != nil {
		return nil, err
	}

	data, err := attr.EncodeJSON(tree)
	if err != nil {
		return nil, errDump(err)
	}

	return data, nil
}

// ToText encodes the model as self-describing JSON text.
func (c *Codec) ToText(m model.Model) (string, error) {
	data, err := c.ToBytes(m)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ToTree encodes the model with the default Codec.
func ToTree(m model.Model) (attr.Tree, error) {
	return defaultCodec.ToTree(m)
}

// ToBytes encodes the model with the default Codec.
func ToBytes(m model.Model) ([]byte, error) {
	return defaultCodec.ToBytes(m)
}

// ToText encodes the model with the default Codec.
func ToText(m model.Model) (string, error) {
	return defaultCodec.ToText(m)
}
