package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/spf13/cobra"
)

// ErrUnknownKind is returned for a get kind cfgq does not know.
var ErrUnknownKind = errors.New("unknown value kind")

type getter func(s *store.Store, section, key string) (string, error)

//nolint:gochecknoglobals // lookup table
var getters = map[string]getter{
	"string": func(s *store.Store, section, key string) (string, error) {
		return s.String(section, key)
	},
	"int": func(s *store.Store, section, key string) (string, error) {
		n, err := s.Int(section, key)

		return strconv.FormatInt(n, 10), err
	},
	"float": func(s *store.Store, section, key string) (string, error) {
		f, err := s.Float(section, key)

		return strconv.FormatFloat(f, 'g', -1, 64), err
	},
	"bool": func(s *store.Store, section, key string) (string, error) {
		b, err := s.Bool(section, key)

		return strconv.FormatBool(b), err
	},
	"vec2": func(s *store.Store, section, key string) (string, error) {
		v, err := store.Vec2[float64](s, section, key)

		return joinFloats(v.X, v.Y), err
	},
	"vec3": func(s *store.Store, section, key string) (string, error) {
		v, err := store.Vec3[float64](s, section, key)

		return joinFloats(v.X, v.Y, v.Z), err
	},
	"array": func(s *store.Store, section, key string) (string, error) {
		items, err := store.Array[string](s, section, key)

		return strings.Join(items, "\n"), err
	},
}

func kinds() []string {
	return []string{"string", "int", "float", "bool", "vec2", "vec3", "array", "attrs"}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KIND FILE SECTION [KEY]",
		Short: "Print one typed value",
		Long: `Print one value converted to KIND, one of:
  string, int, float, bool   scalars
  vec2, vec3                 tuples, printed as "x, y[, z]"
  array                      tuples or arrays, one element per line
  attrs                      the section's attributes, one per line (no KEY)

Keys are looked up through the section's parents.`,
		Example:   "  cfgq get vec2 test.cfg parent vec\n  cfgq get attrs test.cfg name",
		Args:      cobra.RangeArgs(3, 4),
		ValidArgs: kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path, section := args[0], args[1], sectionArg(args[2])

			s, err := loadStore(path)
			if err != nil {
				return err
			}

			var out string

			switch {
			case kind == "attrs":
				if len(args) != 3 {
					return fmt.Errorf("attrs takes no KEY, got %q", args[3])
				}

				attrs, err := s.Attributes(section)
				if err != nil {
					return err //nolint:wrapcheck
				}

				out = strings.Join(attrs, "\n")
			case getters[kind] != nil:
				if len(args) != 4 {
					return fmt.Errorf("%s needs a KEY", kind)
				}

				out, err = getters[kind](s, section, args[3])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("%w %q, want one of %s", ErrUnknownKind, kind, strings.Join(kinds(), ", "))
			}

			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}
}

func joinFloats(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, ", ")
}
