package koanfcfg

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidKey is returned by Marshal for keys that are not valid .cfg identifiers.
var ErrInvalidKey = errors.New("invalid key")

// ErrUnsupportedValue is returned by Marshal for values that have no .cfg form.
var ErrUnsupportedValue = errors.New("unsupported value")

// CFG implements koanf.Parser.
type CFG struct{}

var _ koanf.Parser = (*CFG)(nil)

// Parser returns a .cfg parser for koanf.
func Parser() *CFG {
	return &CFG{}
}

// Unmarshal parses .cfg bytes into a nested map.
func (p *CFG) Unmarshal(b []byte) (map[string]any, error) {
	s, err := store.Parse("", b)
	if err != nil {
		return nil, err
	}

	return s.ToMap(), nil
}

// Marshal writes a nested map as .cfg. Top-level maps become sections, sorted
// by name; other top-level values become root entries. Deeper maps are
// flattened into dotted keys.
func (p *CFG) Marshal(o map[string]any) ([]byte, error) {
	doc := &document.Document{}
	root := &document.Section{Name: document.RootSection}

	var sections []*document.Section

	for _, key := range sortedKeys(o) {
		if sub, ok := o[key].(map[string]any); ok {
			if !document.IsIdent(key) {
				return nil, fmt.Errorf("%w: section %q", ErrInvalidKey, key)
			}

			sec := &document.Section{Name: key}

			err := addEntries(sec, "", sub)
			if err != nil {
				return nil, err
			}

			sections = append(sections, sec)

			continue
		}

		err := addEntry(root, key, o[key])
		if err != nil {
			return nil, err
		}
	}

	if len(root.Entries) > 0 {
		doc.Sections = append(doc.Sections, root)
	}

	doc.Sections = append(doc.Sections, sections...)

	var buf bytes.Buffer

	err := document.Encode(&buf, doc)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func addEntries(sec *document.Section, prefix string, m map[string]any) error {
	for _, key := range sortedKeys(m) {
		name := prefix + key

		if sub, ok := m[key].(map[string]any); ok {
			err := addEntries(sec, name+".", sub)
			if err != nil {
				return err
			}

			continue
		}

		err := addEntry(sec, name, m[key])
		if err != nil {
			return err
		}
	}

	return nil
}

func addEntry(sec *document.Section, key string, v any) error {
	if !document.IsIdent(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	value, err := toValue(v)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}

	sec.Entries = append(sec.Entries, &document.Entry{Key: key, Value: value})

	return nil
}

func toValue(v any) (document.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		sc, err := toScalar(v)
		if err != nil {
			return document.Value{}, err
		}

		return document.Value{Kind: document.KindScalar, Scalar: sc}, nil
	}

	if b, ok := v.([]byte); ok {
		return document.NewScalar(string(b), true), nil
	}

	items := make([]document.Scalar, 0, rv.Len())

	for i := range rv.Len() {
		sc, err := toScalar(rv.Index(i).Interface())
		if err != nil {
			return document.Value{}, fmt.Errorf("element %d: %w", i, err)
		}

		items = append(items, sc)
	}

	return document.NewArray(items...), nil
}

// toScalar keeps strings quoted so they read back as strings.
func toScalar(v any) (document.Scalar, error) {
	switch x := v.(type) {
	case string:
		return document.Scalar{Text: x, Quoted: true}, nil
	case bool:
		return document.Scalar{Text: strconv.FormatBool(x)}, nil
	case float32:
		return floatScalar(float64(x), 32)
	case float64:
		return floatScalar(x, 64)
	case fmt.Stringer:
		return document.Scalar{Text: x.String(), Quoted: true}, nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // everything else is unsupported
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return document.Scalar{Text: strconv.FormatInt(rv.Int(), 10)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return document.Scalar{Text: strconv.FormatUint(rv.Uint(), 10)}, nil
	default:
		return document.Scalar{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// floatScalar rejects Inf and NaN, which would read back as strings.
func floatScalar(f float64, bits int) (document.Scalar, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return document.Scalar{}, fmt.Errorf("%w: non-finite float %v", ErrUnsupportedValue, f)
	}

	return document.Scalar{Text: formatFloat(f, bits)}, nil
}

// formatFloat always includes a '.' or exponent so the value reads back as a float.
func formatFloat(f float64, bits int) string {
	text := strconv.FormatFloat(f, 'g', -1, bits)

	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		text += ".0"
	}

	return text
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
