package store

import (
	"errors"
	"fmt"
	"log/slog"

	filefetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/file"
	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/0xalexb/hjarta-cfg/parser"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ErrSectionNotFound is returned when a section is not declared.
var ErrSectionNotFound = errors.New("section not found")

// ErrKeyNotFound is returned when neither a section nor its parents declare a key.
var ErrKeyNotFound = errors.New("key not found")

// ErrTypeMismatch is returned when a value cannot be read as the requested type.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrOutOfRange is returned when a number does not fit the requested type.
var ErrOutOfRange = errors.New("value out of range")

// Store is an immutable, indexed view of a document.
type Store struct {
	name     string
	doc      *document.Document
	sections *linkedhashmap.Map // section name -> *sectionIndex, in declaration order
}

type sectionIndex struct {
	section *document.Section
	entries *linkedhashmap.Map // key -> *document.Entry, in declaration order
	parent  *sectionIndex
}

// New reads and parses the file at path.
func New(path string) (*Store, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	s, err := Parse(fetcher.Path(), data)
	if err != nil {
		return nil, err
	}

	slog.Debug("store loaded", slog.String("path", fetcher.Path()), slog.Int("sections", s.sections.Size()))

	return s, nil
}

// Parse builds a store from .cfg source. The name is used in error messages.
func Parse(name string, data []byte) (*Store, error) {
	doc, err := parser.Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}

	return FromDocument(doc)
}

// FromDocument indexes an already parsed document. The document must not be
// modified afterwards. Documents built by hand get the same checks as parsed
// ones: duplicate sections and keys, unknown parents and cycles.
func FromDocument(doc *document.Document) (*Store, error) {
	sections := linkedhashmap.New()

	for _, sec := range doc.Sections {
		if _, dup := sections.Get(sec.Name); dup {
			return nil, fmt.Errorf("%w: %q", parser.ErrDuplicateSection, sec.Name)
		}

		entries := linkedhashmap.New()
		for _, e := range sec.Entries {
			if _, dup := entries.Get(e.Key); dup {
				return nil, fmt.Errorf("%w: section %q key %q", parser.ErrDuplicateKey, sec.Name, e.Key)
			}

			entries.Put(e.Key, e)
		}

		sections.Put(sec.Name, &sectionIndex{section: sec, entries: entries})
	}

	for _, key := range sections.Keys() {
		idx := mustIndex(sections, key)
		if idx.section.Parent == "" {
			continue
		}

		parent, ok := sections.Get(idx.section.Parent)
		if !ok {
			return nil, fmt.Errorf("%w: %q inherits from %q", parser.ErrUnknownParent, idx.section.Name, idx.section.Parent)
		}

		idx.parent, _ = parent.(*sectionIndex)
	}

	for _, key := range sections.Keys() {
		hops := 0
		for idx := mustIndex(sections, key); idx != nil; idx = idx.parent {
			hops++
			if hops > sections.Size() {
				return nil, fmt.Errorf("%w: section %q", parser.ErrInheritanceCycle, key)
			}
		}
	}

	return &Store{name: doc.Name, doc: doc, sections: sections}, nil
}

func mustIndex(m *linkedhashmap.Map, key any) *sectionIndex {
	v, _ := m.Get(key)
	idx, _ := v.(*sectionIndex)

	return idx
}

// Name returns the file name the store was loaded from, if any.
func (s *Store) Name() string {
	return s.name
}

// Document returns the parsed document backing the store. Callers must not modify it.
func (s *Store) Document() *document.Document {
	return s.doc
}

func (s *Store) section(name string) (*sectionIndex, error) {
	idx := mustIndex(s.sections, name)
	if idx == nil {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}

	return idx, nil
}

// lookup finds key in the section or its nearest ancestor.
func (s *Store) lookup(section, key string) (*document.Entry, *sectionIndex, error) {
	idx, err := s.section(section)
	if err != nil {
		return nil, nil, err
	}

	for cur := idx; cur != nil; cur = cur.parent {
		if v, ok := cur.entries.Get(key); ok {
			entry, _ := v.(*document.Entry)

			return entry, cur, nil
		}
	}

	return nil, nil, fmt.Errorf("%w: section %q key %q", ErrKeyNotFound, section, key)
}

// Sections returns section names in declaration order.
func (s *Store) Sections() []string {
	names := make([]string, 0, s.sections.Size())
	for _, k := range s.sections.Keys() {
		name, _ := k.(string)
		names = append(names, name)
	}

	return names
}

// HasSection reports whether the section is declared.
func (s *Store) HasSection(section string) bool {
	_, ok := s.sections.Get(section)

	return ok
}

// Has reports whether (section, key) resolves to a value, including inherited ones.
func (s *Store) Has(section, key string) bool {
	_, _, err := s.lookup(section, key)

	return err == nil
}

// Parent returns the name of the section's parent, or "" if it has none.
func (s *Store) Parent(section string) (string, error) {
	idx, err := s.section(section)
	if err != nil {
		return "", err
	}

	return idx.section.Parent, nil
}

// Keys returns the section's own keys in declaration order, followed by
// inherited keys it does not override, nearest parent first.
func (s *Store) Keys(section string) ([]string, error) {
	idx, err := s.section(section)
	if err != nil {
		return nil, err
	}

	var keys []string

	seen := make(map[string]bool)

	for cur := idx; cur != nil; cur = cur.parent {
		for _, k := range cur.entries.Keys() {
			key, _ := k.(string)
			if seen[key] {
				continue
			}

			seen[key] = true
			keys = append(keys, key)
		}
	}

	return keys, nil
}

// Origin returns the name of the section that actually declares (section, key).
func (s *Store) Origin(section, key string) (string, error) {
	_, owner, err := s.lookup(section, key)
	if err != nil {
		return "", err
	}

	return owner.section.Name, nil
}

// Lookup returns the raw value for (section, key).
func (s *Store) Lookup(section, key string) (document.Value, error) {
	entry, _, err := s.lookup(section, key)
	if err != nil {
		return document.Value{}, err
	}

	return entry.Value, nil
}

// Attributes returns a copy of the section's own attributes in declaration order.
func (s *Store) Attributes(section string) ([]string, error) {
	idx, err := s.section(section)
	if err != nil {
		return nil, err
	}

	attrs := make([]string, len(idx.section.Attributes))
	copy(attrs, idx.section.Attributes)

	return attrs, nil
}
