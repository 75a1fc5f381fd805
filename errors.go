package cel

import "fmt"

// BadTypeError reports a type mismatch: a conversion expected one
// variant and found another. It is the only error kind the value
// operations produce, and it carries both tags so callers can build a
// diagnostic without the offending value itself.
type BadTypeError struct {
	Expected Type
	Actual   Type
}

func (e BadTypeError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Actual)
}

// UnsupportedConversionError reports a value category that has no
// interchange representation. Lowering returns it instead of aborting.
type UnsupportedConversionError struct {
	Actual Type
}

func (e UnsupportedConversionError) Error() string {
	return fmt.Sprintf("no interchange representation for %s", e.Actual)
}

func badType(expected Type, v Value) error {
	return BadTypeError{Expected: expected, Actual: v.Type()}
}

func badTypeFor[F any](expected Type) error {
	return BadTypeError{Expected: expected, Actual: tagOf[F]()}
}

func tagOf[F any]() Type {
	var f F
	switch any(f).(type) {
	case Map:
		return TypeMap
	case Int:
		return TypeInt
	case Uint:
		return TypeUint
	case Double:
		return TypeDouble
	case String:
		return TypeString
	case Bytes:
		return TypeBytes
	case Bool:
		return TypeBool
	case Null:
		return TypeNull
	case Date:
		return TypeDate
	case Uuid:
		return TypeUuid
	default:
		panic(fmt.Sprintf("unknown variant %T", f))
	}
}
