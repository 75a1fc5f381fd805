package cel

import (
	"encoding/json"
	"slices"
)

// Map is an unordered associative container from Key to Value with
// unique keys. A Map is built insert-only by its producer and must be
// treated as read-only once it is shared as a Value; copies of a Map
// share the same entries, so cloning is O(1).
type Map struct {
	defaultConversion[Map]
	entries map[Key]Value
}

// NewMap returns an empty map ready for Insert.
func NewMap() Map {
	return Map{entries: make(map[Key]Value)}
}

// MapOf builds a map with string keys from native fields.
func MapOf(fields map[string]Value) Map {
	m := NewMap()
	for k, v := range fields {
		m.Insert(String(k), v)
	}
	return m
}

// Insert stores a value under a key, overwriting any existing entry.
// It has no failure mode.
func (m Map) Insert(k Key, v Value) {
	m.entries[k] = v
}

// Get returns the value stored under a key, or Null if the key is
// absent. It never fails; field access on a record-like map behaves
// like an optional-field access. This silently masks key typos — use
// Lookup when missing fields must be detected.
func (m Map) Get(k Key) Value {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return Null{}
}

// Lookup is the strict variant of Get: it additionally reports whether
// the key was present, distinguishing an absent key from a stored
// Null.
func (m Map) Lookup(k Key) (Value, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m.entries)
}

// Keys returns all keys sorted by CompareKeys, for consumers that need
// deterministic iteration.
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKeys)
	return keys
}

func (m Map) Type() Type { return TypeMap }

func (m Map) Equal(other Value) bool {
	o, ok := other.(Map)
	if !ok || len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		ov, ok := o.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ToJSON lowers the map to an object node, converting every key to its
// canonical text and recursively lowering every value.
func (m Map) ToJSON() (any, error) {
	obj := make(map[string]any, len(m.entries))
	for k, v := range m.entries {
		text, err := keyText(k)
		if err != nil {
			return nil, err
		}
		node, err := v.ToJSON()
		if err != nil {
			return nil, err
		}
		obj[text] = node
	}
	return obj, nil
}

func (m Map) MarshalJSON() ([]byte, error) {
	tree, err := m.ToJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

func (m Map) String() string {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "null"
	}
	return string(buf)
}
