// Package document defines the syntax tree of a .cfg file.
//
// A Document is an ordered list of sections. Each Section has a name, an
// optional parent it inherits entries from, an ordered attribute list and an
// ordered list of entries. Entries bind a key to a Value, which is either a
// scalar (quoted or bare), a tuple such as {10, 20}, or an array such as
// [1, 2, 3].
//
// The tree carries no semantics beyond what was written: inheritance is
// resolved by the store package, type coercion happens at access time.
//
// Encode writes a Document back in canonical form:
//
//	var buf bytes.Buffer
//	err := document.Encode(&buf, doc)
package document
