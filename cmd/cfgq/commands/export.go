package commands

import (
	"fmt"

	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Print the resolved file as YAML",
		Long: `Print the file as YAML with inheritance resolved. Root entries come first,
then one mapping per section in declaration order. Numbers and booleans are
written as YAML scalars, tuples and arrays as sequences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(args[0])
			if err != nil {
				return err
			}

			doc, err := exportSlice(s)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err //nolint:wrapcheck
		},
	}
}

// exportSlice keeps declaration order, which a plain map would lose.
func exportSlice(s *store.Store) (yaml.MapSlice, error) {
	var out yaml.MapSlice

	for _, name := range s.Sections() {
		entries, err := sectionSlice(s, name)
		if err != nil {
			return nil, err
		}

		if name == document.RootSection {
			out = append(out, entries...)

			continue
		}

		out = append(out, yaml.MapItem{Key: name, Value: entries})
	}

	return out, nil
}

func sectionSlice(s *store.Store, section string) (yaml.MapSlice, error) {
	keys, err := s.Keys(section)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	entries := make(yaml.MapSlice, 0, len(keys))

	for _, key := range keys {
		value, err := s.Lookup(section, key)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		entries = append(entries, yaml.MapItem{Key: key, Value: store.Native(value)})
	}

	return entries, nil
}
