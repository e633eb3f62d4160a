package store

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-cfg/document"
)

// Integer is the set of integer types values can be read as.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating point types values can be read as.
type Float interface {
	~float32 | ~float64
}

// Number is the element type of vectors.
type Number interface {
	Integer | Float
}

// Scalar is the set of types a single value can be read as.
type Scalar interface {
	Number | ~string | ~bool
}

// Vector2 is a two-component value such as {10, 20}.
type Vector2[T Number] struct {
	X, Y T
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Vector3 is a three-component value such as {1, 2, 3}.
type Vector3[T Number] struct {
	X, Y, Z T
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Get reads a scalar value as T.
func Get[T Scalar](s *Store, section, key string) (T, error) {
	var zero T

	value, err := s.Lookup(section, key)
	if err != nil {
		return zero, err
	}

	if value.Kind != document.KindScalar {
		return zero, fmt.Errorf("%w: section %q key %q is a %s, not a scalar",
			ErrTypeMismatch, section, key, value.Kind)
	}

	out, err := convert[T](value.Scalar)
	if err != nil {
		return zero, fmt.Errorf("section %q key %q: %w", section, key, err)
	}

	return out, nil
}

// Array reads a tuple or array as a slice of T. An empty array gives an
// empty, non-nil slice.
func Array[T Scalar](s *Store, section, key string) ([]T, error) {
	items, err := listItems(s, section, key)
	if err != nil {
		return nil, err
	}

	return convertAll[T](section, key, items)
}

// Vec2 reads a two element tuple or array.
func Vec2[T Number](s *Store, section, key string) (Vector2[T], error) {
	values, err := vector[T](s, section, key, 2)
	if err != nil {
		return Vector2[T]{}, err
	}

	return Vector2[T]{X: values[0], Y: values[1]}, nil
}

// Vec3 reads a three element tuple or array.
func Vec3[T Number](s *Store, section, key string) (Vector3[T], error) {
	values, err := vector[T](s, section, key, 3)
	if err != nil {
		return Vector3[T]{}, err
	}

	return Vector3[T]{X: values[0], Y: values[1], Z: values[2]}, nil
}

func vector[T Number](s *Store, section, key string, size int) ([]T, error) {
	items, err := listItems(s, section, key)
	if err != nil {
		return nil, err
	}

	if len(items) != size {
		return nil, fmt.Errorf("%w: section %q key %q has %d components, want %d",
			ErrTypeMismatch, section, key, len(items), size)
	}

	return convertAll[T](section, key, items)
}

func listItems(s *Store, section, key string) ([]document.Scalar, error) {
	value, err := s.Lookup(section, key)
	if err != nil {
		return nil, err
	}

	if !value.IsList() {
		return nil, fmt.Errorf("%w: section %q key %q is a scalar, not a list", ErrTypeMismatch, section, key)
	}

	return value.Items, nil
}

func convertAll[T Scalar](section, key string, items []document.Scalar) ([]T, error) {
	out := make([]T, 0, len(items))

	for i, item := range items {
		v, err := convert[T](item)
		if err != nil {
			return nil, fmt.Errorf("section %q key %q element %d: %w", section, key, i, err)
		}

		out = append(out, v)
	}

	return out, nil
}

// convert parses a scalar into T using T's underlying kind and bit size.
func convert[T Scalar](sc document.Scalar) (T, error) {
	var out T

	rv := reflect.ValueOf(&out).Elem()

	switch rv.Kind() { //nolint:exhaustive // Scalar constrains the possible kinds
	case reflect.String:
		rv.SetString(sc.Text)
	case reflect.Bool:
		b, ok := parseBool(sc.Text)
		if !ok {
			return out, fmt.Errorf("%w: cannot read %q as bool", ErrTypeMismatch, sc.Text)
		}

		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(sc.Text, 0, rv.Type().Bits())
		if err != nil {
			return out, numberError(sc.Text, rv.Type(), err)
		}

		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(sc.Text, 0, rv.Type().Bits())
		if err != nil {
			return out, numberError(sc.Text, rv.Type(), err)
		}

		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(sc.Text, rv.Type().Bits())
		if err != nil {
			return out, numberError(sc.Text, rv.Type(), err)
		}

		rv.SetFloat(f)
	default:
		return out, fmt.Errorf("%w: unsupported type %s", ErrTypeMismatch, rv.Type())
	}

	return out, nil
}

func numberError(text string, typ reflect.Type, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit in %s", ErrOutOfRange, text, typ)
	}

	return fmt.Errorf("%w: cannot read %q as %s", ErrTypeMismatch, text, typ)
}

func parseBool(text string) (bool, bool) {
	switch strings.ToLower(text) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

// String reads a scalar as a string. Bare words are returned as written.
func (s *Store) String(section, key string) (string, error) {
	return Get[string](s, section, key)
}

// Int reads a scalar as an int64.
func (s *Store) Int(section, key string) (int64, error) {
	return Get[int64](s, section, key)
}

// Float reads a scalar as a float64.
func (s *Store) Float(section, key string) (float64, error) {
	return Get[float64](s, section, key)
}

// Bool reads a scalar as a bool.
func (s *Store) Bool(section, key string) (bool, error) {
	return Get[bool](s, section, key)
}
