// Package commands implements the cfgq command tree.
package commands

import (
	"log/slog"

	cfg "github.com/0xalexb/hjarta-cfg"
	"github.com/0xalexb/hjarta-cfg/api"
	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/0xalexb/hjarta-cfg/logging"
	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCommand builds the cfgq command tree. Output goes to the command's
// configured writers, so tests can capture it with SetOut and SetErr.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cfgq",
		Short: "Query and check .cfg configuration files",
		Long: `cfgq reads .cfg files: sections with optional inheritance and attributes,
holding strings, numbers, tuples and arrays. It can print single values,
dump or export whole files, reformat them, validate many files at once and
serve them over a read-only HTTP API.

The unnamed root section is written as "` + api.RootAlias + `".`,
		Version:      cfg.VersionString(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  opts.logLevel,
				Format: opts.logFormat,
			}, cmd.ErrOrStderr())
			slog.SetDefault(logger)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format: text or json")

	root.AddCommand(
		newGetCommand(),
		newDumpCommand(),
		newExportCommand(),
		newFmtCommand(),
		newCheckCommand(),
		newServeCommand(),
	)

	return root
}

// Execute runs the cfgq command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute() //nolint:wrapcheck
}

// sectionArg maps the root alias to the root section name.
func sectionArg(arg string) string {
	if arg == api.RootAlias {
		return document.RootSection
	}

	return arg
}

// displaySection is the inverse of sectionArg.
func displaySection(name string) string {
	if name == document.RootSection {
		return api.RootAlias
	}

	return name
}

func loadStore(path string) (*store.Store, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // store errors already name the file
	}

	return s, nil
}
