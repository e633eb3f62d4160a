package commands

import (
	"fmt"

	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE [SECTION...]",
		Short: "Print every resolved value as a table",
		Long: `Print the resolved entries of each section, inherited ones included.
ORIGIN names the section that declares the value. Without SECTION arguments
every section is printed in declaration order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(args[0])
			if err != nil {
				return err
			}

			sections := s.Sections()
			if len(args) > 1 {
				sections = sections[:0]
				for _, arg := range args[1:] {
					sections = append(sections, sectionArg(arg))
				}
			}

			data, err := dumpRows(s, sections)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"SECTION", "KEY", "VALUE", "ORIGIN"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}
}

func dumpRows(s *store.Store, sections []string) ([][]string, error) {
	var data [][]string

	for _, section := range sections {
		keys, err := s.Keys(section)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		for _, key := range keys {
			value, err := s.Lookup(section, key)
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			origin, err := s.Origin(section, key)
			if err != nil {
				return nil, fmt.Errorf("origin of %q: %w", key, err)
			}

			data = append(data, []string{displaySection(section), key, value.String(), displaySection(origin)})
		}
	}

	return data, nil
}
