package store

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/mitchellh/mapstructure"
)

// DecodeTag is the struct tag Decode reads field names from.
const DecodeTag = "cfg"

// Map returns the resolved entries of a section, inherited ones included,
// as plain Go values. See Native for the conversion rules.
func (s *Store) Map(section string) (map[string]any, error) {
	keys, err := s.Keys(section)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(keys))

	for _, key := range keys {
		value, err := s.Lookup(section, key)
		if err != nil {
			return nil, err
		}

		out[key] = Native(value)
	}

	return out, nil
}

// ToMap returns the whole store as nested maps: root section entries at the
// top level and one map per named section. A section shadows a root entry
// with the same name.
func (s *Store) ToMap() map[string]any {
	out := make(map[string]any)

	if s.HasSection(document.RootSection) {
		root, _ := s.Map(document.RootSection)
		for k, v := range root {
			out[k] = v
		}
	}

	for _, name := range s.Sections() {
		if name == document.RootSection {
			continue
		}

		sec, _ := s.Map(name)
		out[name] = sec
	}

	return out
}

// Decode copies a section into target, which must be a pointer to a struct
// or a map. Fields are matched by the `cfg` tag, or by name ignoring case.
// Strings convert to numbers, booleans and durations as needed, and tuples
// decode into structs with X, Y and Z fields such as Vector2.
func (s *Store) Decode(section string, target any) error {
	values, err := s.Map(section)
	if err != nil {
		return err
	}

	err = DecodeMap(values, target)
	if err != nil {
		return fmt.Errorf("decoding section %q: %w", section, err)
	}

	return nil
}

// DecodeMap decodes plain values produced by Map or ToMap into target with
// the same rules as Decode.
func DecodeMap(values any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			vectorHook,
			boolHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
		TagName:          DecodeTag,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return nil
}

var vectorFields = []string{"x", "y", "z"} //nolint:gochecknoglobals

// vectorHook turns a list of up to three elements into an x/y/z map when
// the target is a struct.
func vectorHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || to.Kind() != reflect.Struct {
		return data, nil
	}

	items, ok := data.([]any)
	if !ok || len(items) > len(vectorFields) {
		return data, nil
	}

	out := make(map[string]any, len(items))
	for i, item := range items {
		out[vectorFields[i]] = item
	}

	return out, nil
}

// boolHook accepts the same words as Store.Bool.
func boolHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}

	text, ok := data.(string)
	if !ok {
		return data, nil
	}

	if b, ok := parseBool(text); ok {
		return b, nil
	}

	return data, nil
}

// Native converts a value to a plain Go value. Quoted scalars stay strings.
// Bare scalars become bool for true/false, int64 or float64 when they parse
// as a number, and string otherwise. Lists become []any.
func Native(value document.Value) any {
	if !value.IsList() {
		return nativeScalar(value.Scalar)
	}

	out := make([]any, 0, len(value.Items))
	for _, item := range value.Items {
		out = append(out, nativeScalar(item))
	}

	return out
}

func nativeScalar(sc document.Scalar) any {
	if sc.Quoted {
		return sc.Text
	}

	switch sc.Text {
	case "true":
		return true
	case "false":
		return false
	}

	if !looksNumeric(sc.Text) {
		return sc.Text
	}

	if n, err := strconv.ParseInt(sc.Text, 0, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(sc.Text, 64); err == nil {
		return f
	}

	return sc.Text
}

// looksNumeric excludes words like "inf" and "nan" that ParseFloat accepts.
func looksNumeric(text string) bool {
	if text == "" {
		return false
	}

	c := text[0]
	if c == '+' || c == '-' {
		if len(text) == 1 {
			return false
		}

		c = text[1]
	}

	return (c >= '0' && c <= '9') || c == '.'
}
