package cfg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-cfg/config"
	"github.com/0xalexb/hjarta-cfg/store"
)

// ErrInvalidPath is returned for paths with more than two elements.
var ErrInvalidPath = errors.New("invalid path")

// Parser implements config.Parser for .cfg data.
type Parser struct{}

// NewParser creates a new .cfg parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes .cfg data into target, starting at path.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.ErrEmptyData
	}

	st, err := store.Parse("", data)
	if err != nil {
		return err //nolint:wrapcheck // already carries position and context
	}

	parts := config.SplitPath(path)

	switch len(parts) {
	case 0:
		return store.DecodeMap(st.ToMap(), target)
	case 1:
		if !st.HasSection(parts[0]) {
			return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
		}

		return st.Decode(parts[0], target)
	case 2: //nolint:mnd // section and key
		value, err := st.Lookup(parts[0], parts[1])
		if err != nil {
			return fmt.Errorf("%w: %s: %w", config.ErrPathNotFound, path, err)
		}

		return store.DecodeMap(store.Native(value), target)
	default:
		return fmt.Errorf("%w %q: want \"section\" or \"section:key\"", ErrInvalidPath, path)
	}
}
