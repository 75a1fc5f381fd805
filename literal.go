package cel

import (
	"fmt"

	"github.com/celport/cel/ast"
)

// FromLiteral lifts a parsed literal into its runtime value. Each
// literal category maps onto exactly one variant. Decimal literals are
// parsed from their textual form; the parser guarantees lexical
// validity but not that the text fits the decimal type, so that
// failure is returned rather than panicked.
func FromLiteral(l ast.Literal) (Value, error) {
	switch l := l.(type) {
	case ast.Int:
		return Int(l), nil
	case ast.Uint:
		return Uint(l), nil
	case ast.Double:
		d, err := ParseDouble(string(l))
		if err != nil {
			return nil, fmt.Errorf("decimal literal: %w", err)
		}
		return d, nil
	case ast.String:
		return String(l), nil
	case ast.Bytes:
		return Bytes(l), nil
	case ast.Bool:
		return Bool(l), nil
	case ast.Null:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected literal %T", l)
	}
}
