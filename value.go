// Package cel implements the runtime value model of an embedded
// CEL-style expression language: the closed set of values an
// expression can produce or consume, conversions between those values
// and native Go types, and the lowering of values into a JSON-like
// interchange tree.
//
// The package neither parses text nor evaluates expressions. The
// parser feeds it ast.Literal nodes via FromLiteral, the evaluator
// combines the resulting Values, and hosts inject inputs through Of or
// the variant types directly.
//
// All operations are synchronous and in-memory. Values are safe to
// share across goroutines once published: payload sharing relies on
// the garbage collector rather than a reference count, and a Map must
// not be mutated after it is exposed as a Value.
package cel

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Value is the runtime representation of any datum an expression can
// hold. It is a closed union over ten variants: Map, Int, Uint,
// Double, String, Bytes, Bool, Null, Date and Uuid.
//
// Values are immutable once constructed; copying any Value is O(1)
// because the variable-size variants (Map, String, Bytes) share their
// payload. The conversion methods extract native payloads and fail
// with a BadTypeError when the variant does not match; ToDouble is the
// single widening exception, accepting Int and Uint as well.
type Value interface {
	// Type returns the variant's tag in O(1).
	Type() Type
	// Equal reports structural equality. Values of different variants
	// are never equal; numeric cross-variant comparison must coerce
	// through ToDouble first.
	Equal(other Value) bool

	ToBool() (Bool, error)
	ToString() (String, error)
	ToInt() (Int, error)
	ToUint() (Uint, error)
	ToDouble() (Double, error)
	ToBytes() (Bytes, error)
	ToDate() (Date, error)
	ToUuid() (Uuid, error)

	// ToJSON lowers the value into the interchange tree: nil, bool,
	// int64, uint64, string or map[string]any. Double, Date and Uuid
	// lower to their canonical text so no precision is lost across the
	// interchange boundary; Bytes lowers to standard base64.
	ToJSON() (any, error)

	json.Marshaler
	fmt.Stringer

	value()
}

// defaultConversion supplies the failing conversions for the struct
// variants that embed it; a variant overrides the conversions it
// actually supports.
type defaultConversion[F any] struct{}

func (defaultConversion[F]) ToBool() (Bool, error)     { return false, badTypeFor[F](TypeBool) }
func (defaultConversion[F]) ToString() (String, error) { return "", badTypeFor[F](TypeString) }
func (defaultConversion[F]) ToInt() (Int, error)       { return 0, badTypeFor[F](TypeInt) }
func (defaultConversion[F]) ToUint() (Uint, error)     { return 0, badTypeFor[F](TypeUint) }
func (defaultConversion[F]) ToDouble() (Double, error) { return Double{}, badTypeFor[F](TypeDouble) }
func (defaultConversion[F]) ToBytes() (Bytes, error)   { return nil, badTypeFor[F](TypeBytes) }
func (defaultConversion[F]) ToDate() (Date, error)     { return Date{}, badTypeFor[F](TypeDate) }
func (defaultConversion[F]) ToUuid() (Uuid, error)     { return Uuid{}, badTypeFor[F](TypeUuid) }
func (defaultConversion[F]) value()                    {}

// Int is a signed 64-bit integer value.
type Int int64

func (i Int) Type() Type { return TypeInt }
func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}
func (i Int) ToBool() (Bool, error)     { return false, badType(TypeBool, i) }
func (i Int) ToString() (String, error) { return "", badType(TypeString, i) }
func (i Int) ToInt() (Int, error)       { return i, nil }
func (i Int) ToUint() (Uint, error)     { return 0, badType(TypeUint, i) }
func (i Int) ToDouble() (Double, error) {
	return Double{Value: apd.New(int64(i), 0)}, nil
}
func (i Int) ToBytes() (Bytes, error) { return nil, badType(TypeBytes, i) }
func (i Int) ToDate() (Date, error)   { return Date{}, badType(TypeDate, i) }
func (i Int) ToUuid() (Uuid, error)   { return Uuid{}, badType(TypeUuid, i) }
func (i Int) ToJSON() (any, error)    { return int64(i), nil }
func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(i))
}
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) value()         {}
func (i Int) key()           {}

// Uint is an unsigned 64-bit integer value.
type Uint uint64

func (u Uint) Type() Type { return TypeUint }
func (u Uint) Equal(other Value) bool {
	o, ok := other.(Uint)
	return ok && u == o
}
func (u Uint) ToBool() (Bool, error)     { return false, badType(TypeBool, u) }
func (u Uint) ToString() (String, error) { return "", badType(TypeString, u) }
func (u Uint) ToInt() (Int, error)       { return 0, badType(TypeInt, u) }
func (u Uint) ToUint() (Uint, error)     { return u, nil }
func (u Uint) ToDouble() (Double, error) {
	return Double{Value: apd.NewWithBigInt(new(apd.BigInt).SetUint64(uint64(u)), 0)}, nil
}
func (u Uint) ToBytes() (Bytes, error) { return nil, badType(TypeBytes, u) }
func (u Uint) ToDate() (Date, error)   { return Date{}, badType(TypeDate, u) }
func (u Uint) ToUuid() (Uuid, error)   { return Uuid{}, badType(TypeUuid, u) }
func (u Uint) ToJSON() (any, error)    { return uint64(u), nil }
func (u Uint) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(u))
}
func (u Uint) String() string { return strconv.FormatUint(uint64(u), 10) }
func (u Uint) value()         {}
func (u Uint) key()           {}

// Bool is a boolean value.
type Bool bool

func (b Bool) Type() Type { return TypeBool }
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

// ToBool extracts the boolean payload. There is no implicit
// truthiness: every other variant fails with a BadTypeError, so a
// conditional context must hold an actual Bool.
func (b Bool) ToBool() (Bool, error)     { return b, nil }
func (b Bool) ToString() (String, error) { return "", badType(TypeString, b) }
func (b Bool) ToInt() (Int, error)       { return 0, badType(TypeInt, b) }
func (b Bool) ToUint() (Uint, error)     { return 0, badType(TypeUint, b) }
func (b Bool) ToDouble() (Double, error) { return Double{}, badType(TypeDouble, b) }
func (b Bool) ToBytes() (Bytes, error)   { return nil, badType(TypeBytes, b) }
func (b Bool) ToDate() (Date, error)     { return Date{}, badType(TypeDate, b) }
func (b Bool) ToUuid() (Uuid, error)     { return Uuid{}, badType(TypeUuid, b) }
func (b Bool) ToJSON() (any, error)      { return bool(b), nil }
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (b Bool) value()         {}
func (b Bool) key()           {}

// String is an immutable text value. Copies share the underlying
// bytes.
type String string

func (s String) Type() Type { return TypeString }
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}
func (s String) ToBool() (Bool, error)     { return false, badType(TypeBool, s) }
func (s String) ToString() (String, error) { return s, nil }
func (s String) ToInt() (Int, error)       { return 0, badType(TypeInt, s) }
func (s String) ToUint() (Uint, error)     { return 0, badType(TypeUint, s) }
func (s String) ToDouble() (Double, error) { return Double{}, badType(TypeDouble, s) }
func (s String) ToBytes() (Bytes, error)   { return nil, badType(TypeBytes, s) }
func (s String) ToDate() (Date, error)     { return Date{}, badType(TypeDate, s) }
func (s String) ToUuid() (Uuid, error)     { return Uuid{}, badType(TypeUuid, s) }
func (s String) ToJSON() (any, error)      { return string(s), nil }
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}
func (s String) String() string { return fmt.Sprintf("'%s'", string(s)) }
func (s String) value()         {}
func (s String) key()           {}

// Bytes is an immutable byte-sequence value. Copies share the
// underlying array; callers must not mutate it after construction.
type Bytes []byte

func (b Bytes) Type() Type { return TypeBytes }
func (b Bytes) Equal(other Value) bool {
	o, ok := other.(Bytes)
	return ok && bytes.Equal(b, o)
}
func (b Bytes) ToBool() (Bool, error)     { return false, badType(TypeBool, b) }
func (b Bytes) ToString() (String, error) { return "", badType(TypeString, b) }
func (b Bytes) ToInt() (Int, error)       { return 0, badType(TypeInt, b) }
func (b Bytes) ToUint() (Uint, error)     { return 0, badType(TypeUint, b) }
func (b Bytes) ToDouble() (Double, error) { return Double{}, badType(TypeDouble, b) }
func (b Bytes) ToBytes() (Bytes, error)   { return b, nil }
func (b Bytes) ToDate() (Date, error)     { return Date{}, badType(TypeDate, b) }
func (b Bytes) ToUuid() (Uuid, error)     { return Uuid{}, badType(TypeUuid, b) }
func (b Bytes) ToJSON() (any, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}
func (b Bytes) String() string {
	return fmt.Sprintf("b'%s'", base64.StdEncoding.EncodeToString(b))
}
func (b Bytes) value() {}

// Null is the distinguished null value, not the absence of a value.
// Map lookup of an absent key yields it.
type Null struct {
	defaultConversion[Null]
}

func (n Null) Type() Type { return TypeNull }
func (n Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}
func (n Null) ToJSON() (any, error) { return nil, nil }
func (n Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
func (n Null) String() string { return "null" }
