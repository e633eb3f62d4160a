package yaml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-cfg/config"
	"github.com/goccy/go-yaml"
)

// Parser implements config.Parser for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into target, starting at path.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath, err := yaml.PathString(toYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = yamlPath.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// toYAMLPath converts "a:b" to "$.a.b".
func toYAMLPath(path string) string {
	return "$." + strings.Join(config.SplitPath(path), ".")
}
