package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// PathSeparator separates elements of a Parser path.
const PathSeparator = ":"

// ErrEmptyData is returned by parsers when the input is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned by parsers when a path does not resolve.
var ErrPathNotFound = errors.New("path not found")

// Parser decodes configuration data into target. The path selects a part of
// the document; "" means all of it. See the package documentation for the
// path syntax.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by targets that can check themselves after loading.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill in unset fields after parsing.
// It reports whether anything changed.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// SplitPath splits a colon separated path into its elements. An empty path
// yields no elements.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, PathSeparator)
}

// Provider returns a function that fetches, parses, defaults and validates
// configuration into target.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Info("defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err = validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
