package cel

import "encoding/json"

// Marshal lowers a value into the interchange tree and serializes it.
// It is the host-facing counterpart of Value.ToJSON for callers that
// want bytes rather than the tree itself.
func Marshal(v Value) ([]byte, error) {
	tree, err := v.ToJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
