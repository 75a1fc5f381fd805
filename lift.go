package cel

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Of lifts a native Go value into a runtime value. It covers the
// primitives an embedding host typically injects as expression inputs;
// a Value passes through unchanged and an unhandled type is an error.
//
// Signed integers lift to Int, unsigned ones to Uint; a time.Time is
// truncated to its calendar date.
func Of(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case []byte:
		return Bytes(v), nil
	case int:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case uint32:
		return Uint(v), nil
	case uint64:
		return Uint(v), nil
	case *apd.Decimal:
		return Double{Value: v}, nil
	case time.Time:
		return NewDate(v), nil
	case uuid.UUID:
		return Uuid{Value: v}, nil
	case map[string]Value:
		return MapOf(v), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as an expression value", v)
	}
}
