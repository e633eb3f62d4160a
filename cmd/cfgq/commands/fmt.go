package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/spf13/cobra"
)

func newFmtCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Reformat a file in canonical layout",
		Long: `Parse FILE and print it back in canonical layout: one entry per line,
"key = value" spacing, adjacent strings joined and comments dropped.
With --write the file is rewritten in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			s, err := loadStore(path)
			if err != nil {
				return err
			}

			var buf bytes.Buffer

			err = document.Encode(&buf, s.Document())
			if err != nil {
				return fmt.Errorf("encode %q: %w", path, err)
			}

			if !write {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())

				return err //nolint:wrapcheck
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %q: %w", path, err)
			}

			err = os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
			if err != nil {
				return fmt.Errorf("write %q: %w", path, err)
			}

			slog.Info("file formatted", slog.String("path", path))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file instead of printing it")

	return cmd
}
