package cel

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Uuid is a 128-bit identifier value.
type Uuid struct {
	defaultConversion[Uuid]
	Value uuid.UUID
}

// NewUuid wraps a UUID.
func NewUuid(id uuid.UUID) Uuid {
	return Uuid{Value: id}
}

// ParseUuid parses the canonical textual UUID form.
func ParseUuid(s string) (Uuid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Uuid{}, fmt.Errorf("parse uuid %q: %w", s, err)
	}
	return Uuid{Value: id}, nil
}

func (u Uuid) Type() Type { return TypeUuid }
func (u Uuid) Equal(other Value) bool {
	o, ok := other.(Uuid)
	return ok && u.Value == o.Value
}
func (u Uuid) ToUuid() (Uuid, error) { return u, nil }
func (u Uuid) ToJSON() (any, error)  { return u.Value.String(), nil }
func (u Uuid) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Value.String())
}
func (u Uuid) String() string { return u.Value.String() }
