// Package store provides typed, read-only access to a parsed .cfg file.
//
// A Store is built once, from a file path, raw bytes or a parsed document,
// and never changes afterwards. Values are addressed by (section, key).
// When a section inherits from a parent ([child : parent]), lookups fall
// back along the parent chain and the nearest definition wins.
//
// # Accessors
//
// Scalar accessors are methods:
//
//	s, err := store.New("test.cfg")
//	title, err := s.String("", "title")
//	attrs, err := s.Attributes("name")
//
// Generic accessors are functions, since Go methods cannot take type
// parameters:
//
//	vec, err := store.Vec2[int](s, "parent", "vec")
//	arr, err := store.Array[int](s, "name", "array")
//	port, err := store.Get[uint16](s, "server", "port")
//
// # Coercion
//
// Values are stored as written and converted on access. Quoted and bare
// scalars convert the same way: integers with strconv base 0 at the target
// bit size (so 0x1F and 1_000 work), floats with strconv.ParseFloat and
// booleans from true/yes/on/1 or false/no/off/0, ignoring case.
//
// # Errors
//
// Accessors return ErrSectionNotFound, ErrKeyNotFound, ErrTypeMismatch or
// ErrOutOfRange wrapped with the section and key. Construction errors wrap
// the fetcher error (missing file, directory path) or a *parser.Error.
package store
