package cel

import "fmt"

// Type labels a value or key variant. It carries no data; its only job
// is to name the expected and actual sides of a type error.
type Type int

const (
	TypeMap Type = iota
	TypeInt
	TypeUint
	TypeDouble
	TypeString
	TypeBytes
	TypeBool
	TypeNull
	TypeDate
	TypeUuid
)

func (t Type) String() string {
	switch t {
	case TypeMap:
		return "Map"
	case TypeInt:
		return "Int"
	case TypeUint:
		return "UInt"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeBytes:
		return "Bytes"
	case TypeBool:
		return "Bool"
	case TypeNull:
		return "Null"
	case TypeDate:
		return "Date"
	case TypeUuid:
		return "Uuid"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}
