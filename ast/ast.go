// Package ast declares the literal syntax nodes exchanged between the
// parser and the runtime value model.
//
// The parser guarantees that a literal is lexically valid. It does not
// guarantee that a decimal literal fits the runtime decimal type; the
// value layer must treat that parse as fallible.
package ast

// Literal is a literal produced by the parser, one variant per lexical
// category.
type Literal interface {
	literal()
}

type (
	// Int is a signed integer literal.
	Int int64
	// Uint is an unsigned integer literal (`u` suffix).
	Uint uint64
	// Double is a decimal literal, kept in its textual form until the
	// value layer parses it into the runtime decimal type.
	Double string
	// String is a text literal, already unescaped.
	String string
	// Bytes is a byte-sequence literal, already unescaped.
	Bytes []byte
	// Bool is a boolean literal.
	Bool bool
	// Null is the null literal.
	Null struct{}
)

func (Int) literal()    {}
func (Uint) literal()   {}
func (Double) literal() {}
func (String) literal() {}
func (Bytes) literal()  {}
func (Bool) literal()   {}
func (Null) literal()   {}
