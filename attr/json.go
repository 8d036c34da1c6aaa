package attr

import (
	jsoniter "github.com/json-iterator/go"
)

// codec keeps numbers as json.Number during decoding so exact decimal text
// survives a round trip, and sorts keys so encoded output is deterministic.
var codec = jsoniter.Config{
	UseNumber:   true,
	SortMapKeys: true,
}.Froze()

// EncodeJSON renders the tree as UTF-8 JSON text.
func EncodeJSON(tree Tree) ([]byte, error) {
	data, err := codec.Marshal(tree)
	if err != nil {
		return nil, errEncode(err)
	}

	return data, nil
}

// DecodeJSON parses JSON text into a tree.
// The top-level value must be a JSON object; nested objects are normalized
// to Tree so accessors work at every depth.
func DecodeJSON(data []byte) (Tree, error) {
	var raw map[string]any

	if err := codec.Unmarshal(data, &raw); err != nil {
		return nil, errDecode(err)
	}

	return normalize(raw), nil
}

func normalize(raw map[string]any) Tree {
	tree := make(Tree, len(raw))
	for key, value := range raw {
		tree[key] = normalizeValue(value)
	}

	return tree
}

func normalizeValue(value any) any {
	switch val := value.(type) {
	case map[string]any:
		return normalize(val)
	case []any:
		for i, item := range val {
			val[i] = normalizeValue(item)
		}

		return val
	default:
		return val
	}
}
