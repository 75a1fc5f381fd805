package cel

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Double is a fixed-point decimal value. It is backed by apd.Decimal
// rather than a binary float so that decimal literals keep their exact
// written value and comparisons carry no rounding surprises.
//
// The zero Double is not usable; construct one with NewDouble,
// ParseDouble, or a numeric widening via Value.ToDouble.
type Double struct {
	defaultConversion[Double]
	Value *apd.Decimal
}

// NewDouble wraps an apd.Decimal. The decimal is shared, not copied;
// callers must not mutate it afterwards.
func NewDouble(d *apd.Decimal) Double {
	return Double{Value: d}
}

// ParseDouble parses the textual form of a decimal. Lexically valid
// text can still exceed the decimal type's exponent limits, so the
// failure is returned, never panicked.
func ParseDouble(s string) (Double, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Double{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return Double{Value: d}, nil
}

func (d Double) Type() Type { return TypeDouble }

// Equal reports numeric equality with another Double; 1.50 equals 1.5.
func (d Double) Equal(other Value) bool {
	o, ok := other.(Double)
	return ok && d.Value.Cmp(o.Value) == 0
}

func (d Double) ToDouble() (Double, error) { return d, nil }

// ToJSON lowers to the canonical plain-notation text, e.g. "19.99",
// so the interchange boundary cannot introduce a binary approximation.
func (d Double) ToJSON() (any, error) { return d.Value.Text('f'), nil }
func (d Double) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value.Text('f'))
}
func (d Double) String() string { return d.Value.Text('f') }
