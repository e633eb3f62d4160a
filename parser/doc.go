// Package parser reads .cfg source into a document.Document.
//
// The grammar is line oriented:
//
//	# comment                     ; also a comment
//	root_key = value              entries before any header go to section ""
//	[name]                        section header
//	[name : parent] (a, "b c")    inheritance and an attribute list
//	key = value
//
// A value is one of:
//   - a quoted string "..." (Go escapes) or a raw string `...` (may span lines);
//     adjacent string literals, also on following lines, are concatenated
//   - a bare word: numbers, booleans, identifiers, paths
//   - a tuple {a, b} or an array [a, b, c] of scalars; newlines inside the
//     delimiters are ignored and a trailing comma is allowed
//
// Section names, parent names and keys are identifiers: a letter or '_'
// followed by letters, digits, '_', '.' or '-'.
//
// Besides syntax, Parse validates the document: a section is declared once,
// a key is declared once per section, every parent exists and inheritance
// has no cycles. All failures are *Error values carrying a position; match
// them with errors.Is against ErrSyntax, ErrDuplicateSection, ErrDuplicateKey,
// ErrUnknownParent and ErrInheritanceCycle.
package parser
