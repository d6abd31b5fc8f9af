package syntax

import (
	"strconv"
	"strings"
)

// Prim is a runtime value: either an Int or a Str.
type Prim interface {
	prim()
	String() string
}

// Int is an integer value.
type Int int64

// Str is a string value.
type Str string

func (Int) prim() {}
func (Str) prim() {}

func (n Int) String() string { return strconv.FormatInt(int64(n), 10) }
func (s Str) String() string { return Quote(string(s)) }

// Atom is the smallest executable unit: a Literal or a WordRef.
type Atom interface {
	atom()
	String() string
}

// Literal is an atom that pushes its value.
type Literal struct{ Value Prim }

// WordRef is an atom that invokes the named word.
type WordRef string

func (Literal) atom() {}
func (WordRef) atom() {}

func (lit Literal) String() string { return lit.Value.String() }
func (ref WordRef) String() string { return string(ref) }

// Lit is shorthand for a Literal atom.
func Lit(value Prim) Atom { return Literal{value} }

// Node is a top level unit of a parsed program: an Instruction or a
// Definition.
type Node interface {
	node()
	String() string
}

// Instruction executes a single atom immediately.
type Instruction struct{ Atom Atom }

// Definition binds Name to Body in the dictionary when executed.
type Definition struct {
	Name string
	Body []Atom
}

func (Instruction) node() {}
func (Definition) node()  {}

func (in Instruction) String() string { return in.Atom.String() }

func (def Definition) String() string {
	var sb strings.Builder
	sb.WriteString(": ")
	sb.WriteString(def.Name)
	for _, atom := range def.Body {
		sb.WriteByte(' ')
		sb.WriteString(atom.String())
	}
	sb.WriteString(" ;")
	return sb.String()
}

// Push is shorthand for an Instruction that pushes a literal.
func Push(value Prim) Node { return Instruction{Literal{value}} }

// Call is shorthand for an Instruction referencing a word.
func Call(name string) Node { return Instruction{WordRef(name)} }
