package document

import (
	"fmt"
	"strings"
)

// RootSection is the name of the implicit section holding entries declared
// before the first section header.
const RootSection = ""

// Pos is a position in a source file. Line and Column are 1-based.
type Pos struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Kind identifies the shape of a Value.
type Kind int

const (
	// KindScalar is a single quoted or bare value.
	KindScalar Kind = iota
	// KindTuple is a brace-delimited list such as {10, 20}.
	KindTuple
	// KindArray is a bracket-delimited list such as [1, 2, 3].
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindTuple:
		return "tuple"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Scalar is a single value as written in the source.
// Quoted is true for string literals; Text then holds the unquoted content.
type Scalar struct {
	Text   string
	Quoted bool
}

// Value is the right-hand side of an entry.
// Scalar is set for KindScalar, Items for KindTuple and KindArray.
type Value struct {
	Kind   Kind
	Scalar Scalar
	Items  []Scalar
	Pos    Pos
}

// NewScalar returns a scalar value.
func NewScalar(text string, quoted bool) Value {
	return Value{Kind: KindScalar, Scalar: Scalar{Text: text, Quoted: quoted}}
}

// NewTuple returns a tuple value of the given items.
func NewTuple(items ...Scalar) Value {
	return Value{Kind: KindTuple, Items: items}
}

// NewArray returns an array value of the given items.
func NewArray(items ...Scalar) Value {
	if items == nil {
		items = []Scalar{}
	}

	return Value{Kind: KindArray, Items: items}
}

// IsList reports whether the value is a tuple or an array.
func (v Value) IsList() bool {
	return v.Kind == KindTuple || v.Kind == KindArray
}

// String renders the value the way Encode writes it.
func (v Value) String() string {
	var sb strings.Builder

	writeValue(&sb, v)

	return sb.String()
}

// Entry binds a key to a value inside a section.
type Entry struct {
	Key   string
	Value Value
	Pos   Pos
}

// Section is a named group of entries.
type Section struct {
	Name       string
	Parent     string
	Attributes []string
	Entries    []*Entry
	Pos        Pos
}

// Entry returns the entry with the given key declared directly in the section.
func (s *Section) Entry(key string) (*Entry, bool) {
	for _, e := range s.Entries {
		if e.Key == key {
			return e, true
		}
	}

	return nil, false
}

// Document is a parsed .cfg file.
type Document struct {
	Name     string
	Sections []*Section
}

// Section returns the section with the given name.
func (d *Document) Section(name string) (*Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}

	return nil, false
}
