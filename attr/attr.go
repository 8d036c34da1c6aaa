// Package attr defines the attribute tree, the intermediate form every model
// value passes through on its way to and from text.
// A tree holds JSON-compatible values only: nil, bool, string, json.Number,
// []any and nested trees.
package attr

import (
	"encoding/json"
	"strconv"
)

// Tree is a string-keyed mapping of JSON-compatible values.
type Tree map[string]any

// Clone returns a deep copy of the tree.
// Nested trees and sequences are copied recursively, so mutating the clone
// never affects the original.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}

	out := make(Tree, len(t))
	for key, value := range t {
		out[key] = cloneValue(value)
	}

	return out
}

func cloneValue(value any) any {
	switch val := value.(type) {
	case Tree:
		return val.Clone()
	case map[string]any:
		return Tree(val).Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return val
	}
}

// String returns the string stored under key.
func (t Tree) String(key string) (string, error) {
	value, ok := t[key]
	if !ok {
		return "", MissingFieldError{Key: key}
	}

	str, ok := value.(string)
	if !ok {
		return "", FieldTypeError{Key: key, Want: "string", Got: value}
	}

	return str, nil
}

// Number returns the number stored under key as exact decimal text.
// Raw Go numerics are accepted and converted, so hand-built trees behave
// the same as decoded ones.
func (t Tree) Number(key string) (json.Number, error) {
	value, ok := t[key]
	if !ok {
		return "", MissingFieldError{Key: key}
	}

	switch num := value.(type) {
	case json.Number:
		return num, nil
	case float64:
		return Float(num), nil
	case int:
		return Int(int64(num)), nil
	case int64:
		return Int(num), nil
	default:
		return "", FieldTypeError{Key: key, Want: "number", Got: value}
	}
}

// Tree returns the nested tree stored under key.
func (t Tree) Tree(key string) (Tree, error) {
	value, ok := t[key]
	if !ok {
		return nil, MissingFieldError{Key: key}
	}

	switch sub := value.(type) {
	case Tree:
		return sub, nil
	case map[string]any:
		return Tree(sub), nil
	default:
		return nil, FieldTypeError{Key: key, Want: "tree", Got: value}
	}
}

// Float converts a float64 to its shortest exact decimal representation.
func Float(value float64) json.Number {
	return json.Number(strconv.FormatFloat(value, 'g', -1, 64))
}

// Int converts an int64 to decimal text.
func Int(value int64) json.Number {
	return json.Number(strconv.FormatInt(value, 10))
}
