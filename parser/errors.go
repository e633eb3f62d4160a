package parser

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-cfg/document"
)

// ErrSyntax is returned when the input is not well-formed.
var ErrSyntax = errors.New("syntax error")

// ErrDuplicateSection is returned when a section header appears more than once.
var ErrDuplicateSection = errors.New("duplicate section")

// ErrDuplicateKey is returned when a key is declared twice in the same section.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrUnknownParent is returned when a section inherits from an undeclared section.
var ErrUnknownParent = errors.New("unknown parent section")

// ErrInheritanceCycle is returned when section inheritance loops back on itself.
var ErrInheritanceCycle = errors.New("inheritance cycle")

// Error is a positioned parse or validation error.
// Use errors.Is with the package sentinels to check its category.
type Error struct {
	File string
	Pos  document.Pos
	Msg  string
	Err  error
}

func newError(pos document.Pos, kind error, msg string) *Error {
	return &Error{Pos: pos, Msg: msg, Err: kind}
}

// Error formats as "file:line:column: category: message". The file part is
// omitted for anonymous input.
func (e *Error) Error() string {
	prefix := e.Pos.String()
	if e.File != "" {
		prefix = e.File + ":" + prefix
	}

	return fmt.Sprintf("%s: %v: %s", prefix, e.Err, e.Msg)
}

// Unwrap returns the error category.
func (e *Error) Unwrap() error {
	return e.Err
}
