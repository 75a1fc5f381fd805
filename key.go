package cel

import (
	"cmp"
	"strconv"
)

// Key is the restricted subset of values usable as map keys: Int,
// Uint, Bool and String. The set is closed by the unexported marker
// method, so a Map, Double, Bytes, Null, Date or Uuid key is a compile
// error in the embedding code, not a runtime failure.
//
// All key variants are comparable Go types with structural equality,
// so a Key hashes and compares consistently with CompareKeys.
type Key interface {
	Type() Type
	String() string

	key()
}

// KeyOf projects a value onto the key subset. It is total: values
// outside the subset report false rather than an error.
func KeyOf(v Value) (Key, bool) {
	k, ok := v.(Key)
	return k, ok
}

// CompareKeys is a total order over keys, by type tag first and then
// by payload. It is consistent with key equality and gives maps a
// deterministic iteration order where a consumer needs one.
func CompareKeys(a, b Key) int {
	if c := cmp.Compare(a.Type(), b.Type()); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Int:
		return cmp.Compare(a, b.(Int))
	case Uint:
		return cmp.Compare(a, b.(Uint))
	case String:
		return cmp.Compare(a, b.(String))
	case Bool:
		o := b.(Bool)
		switch {
		case a == o:
			return 0
		case !bool(a):
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

// keyText renders the canonical interchange text of a key: decimal
// digits for integers, true/false for booleans, the raw text for
// strings. Any future key variant must define a canonical form here or
// map lowering reports it as unsupported.
func keyText(k Key) (string, error) {
	switch k := k.(type) {
	case String:
		return string(k), nil
	case Int:
		return strconv.FormatInt(int64(k), 10), nil
	case Uint:
		return strconv.FormatUint(uint64(k), 10), nil
	case Bool:
		return strconv.FormatBool(bool(k)), nil
	default:
		return "", UnsupportedConversionError{Actual: k.Type()}
	}
}
