package polymodel

import (
	"github.com/tarantool/go-option"

	"github.com/polymodel/go-polymodel/attr"
	"github.com/polymodel/go-polymodel/model"
)

// Mode selects which raw input shapes the validation entry point accepts.
type Mode int

const (
	// ModeStructured accepts already-constructed model values and
	// attribute trees.
	ModeStructured Mode = iota
	// ModeText accepts JSON text, UTF-8 bytes and pre-parsed attribute
	// trees.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeStructured:
		return "Structured"
	case ModeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Input is the tagged union of raw shapes accepted by Validate.
// Exactly one variant is set, via one of the constructor functions.
type Input struct {
	value option.Generic[model.Model]
	tree  option.Generic[attr.Tree]
	text  option.Generic[string]
	raw   option.Generic[[]byte]
}

// ValueInput wraps an already-constructed model value.
func ValueInput(m model.Model) Input {
	return Input{
		value: option.Some(m),
		tree:  option.None[attr.Tree](),
		text:  option.None[string](),
		raw:   option.None[[]byte](),
	}
}

// TreeInput wraps a pre-parsed attribute tree.
func TreeInput(tree attr.Tree) Input {
	return Input{
		value: option.None[model.Model](),
		tree:  option.Some(tree),
		text:  option.None[string](),
		raw:   option.None[[]byte](),
	}
}

// TextInput wraps JSON text.
func TextInput(text string) Input {
	return Input{
		value: option.None[model.Model](),
		tree:  option.None[attr.Tree](),
		text:  option.Some(text),
		raw:   option.None[[]byte](),
	}
}

// BytesInput wraps raw UTF-8 JSON bytes.
func BytesInput(data []byte) Input {
	return Input{
		value: option.None[model.Model](),
		tree:  option.None[attr.Tree](),
		text:  option.None[string](),
		raw:   option.Some(data),
	}
}

func (in Input) kind() string {
	switch {
	case in.value.IsSome():
		return "model value"
	case in.tree.IsSome():
		return "attribute tree"
	case in.text.IsSome():
		return "text"
	case in.raw.IsSome():
		return "bytes"
	default:
		return "empty"
	}
}

// Validate resolves the input to a model value according to the mode.
// An already-constructed value under ModeStructured passes through
// unchanged. Validate has no hidden state and is safe to call concurrently.
func (c *Codec) Validate(in Input, mode Mode) (model.Model, error) {
	switch mode {
	case ModeStructured:
		switch {
		case in.value.IsSome():
			return in.value.UnwrapOr(nil), nil
		case in.tree.IsSome():
			return c.FromTree(in.tree.UnwrapOr(nil))
		default:
			return nil, UnsupportedInputError{Mode: mode, Kind: in.kind()}
		}
	case ModeText:
		switch {
		case in.text.IsSome():
			return c.FromText(in.text.UnwrapOr(""))
		case in.raw.IsSome():
			return c.FromBytes(in.raw.UnwrapOr(nil))
		case in.tree.IsSome():
			return c.FromTree(in.tree.UnwrapOr(nil))
		default:
			return nil, UnsupportedInputError{Mode: mode, Kind: in.kind()}
		}
	default:
		return nil, UnsupportedModeError{Mode: mode}
	}
}

// Validate resolves the input with the default Codec.
func Validate(in Input, mode Mode) (model.Model, error) {
	return defaultCodec.Validate(in, mode)
}
