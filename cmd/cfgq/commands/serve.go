package commands

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/0xalexb/hjarta-cfg"
	"github.com/0xalexb/hjarta-cfg/config"
	filefetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-cfg/config/parser/yaml"
	"github.com/0xalexb/hjarta-cfg/listener"
	"github.com/0xalexb/hjarta-cfg/logging"
	"github.com/spf13/cobra"
)

// ErrNoStoreFile is returned when serve has no .cfg file to serve.
var ErrNoStoreFile = errors.New("no .cfg file to serve")

// storeSettings selects the served file.
type storeSettings struct {
	Path     string        `yaml:"path"`
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce"`
}

// serveSettings is the YAML document read by serve --settings.
type serveSettings struct {
	Store    storeSettings        `yaml:"store"`
	Listener listener.Config      `yaml:"listener"`
	Log      logging.LoggerConfig `yaml:"log"`
}

// SetDefaults fills in the listener and log sections.
func (s *serveSettings) SetDefaults() bool {
	listenerChanged := s.Listener.SetDefaults()
	logChanged := s.Log.SetDefaults()

	return listenerChanged || logChanged
}

// Validate validates every section.
func (s *serveSettings) Validate() error {
	if s.Store.Path == "" {
		return ErrNoStoreFile
	}

	if s.Store.Debounce < 0 {
		return fmt.Errorf("store: debounce must not be negative, got %s", s.Store.Debounce)
	}

	err := s.Listener.Validate()
	if err != nil {
		return fmt.Errorf("listener: %w", err)
	}

	err = s.Log.Validate()
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

type serveFlags struct {
	settings string
	file     string
	addr     string
	watch    bool
}

// flagParser applies command line overrides on top of the parsed settings,
// before defaults and validation run.
type flagParser struct {
	next  config.Parser
	flags serveFlags
}

func (p flagParser) Parse(data []byte, target any, path string) error {
	err := p.next.Parse(data, target, path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	settings, ok := target.(*serveSettings)
	if !ok {
		return fmt.Errorf("unexpected settings type %T", target)
	}

	if p.flags.file != "" {
		settings.Store.Path = p.flags.file
	}

	if p.flags.addr != "" {
		settings.Listener.Address = p.flags.addr
	}

	if p.flags.watch {
		settings.Store.Watch = true
	}

	return nil
}

// noSettings stands in for a missing --settings file.
type noSettings struct{}

func (noSettings) Fetch() ([]byte, error) {
	return []byte("{}"), nil
}

// loadServeSettings reads the settings file, if any, and lets flags override it.
func loadServeSettings(flags serveFlags) (*serveSettings, error) {
	var fetcher config.DataFetcher = noSettings{}

	if flags.settings != "" {
		f, err := filefetcher.NewFetcher(flags.settings)()
		if err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}

		fetcher = f
	}

	parser := flagParser{next: yamlparser.NewParser(), flags: flags}

	return config.Provider(&serveSettings{}, "")(parser, fetcher)
}

func newServeCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a file over the read-only HTTP query API",
		Long: `Serve a .cfg file over HTTP until interrupted.

Settings come from the YAML file given with --settings:

  store:
    path: test.cfg
    watch: true
    debounce: 250ms
  listener:
    address: 127.0.0.1:8080
    read_timeout: 10s
    write_timeout: 30s
  log:
    level: info
    format: json

--file, --addr and --watch override the matching settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadServeSettings(flags)
			if err != nil {
				return err
			}

			opts := []cfg.Option{
				cfg.WithLogLevel(settings.Log.Level),
				cfg.WithLogFormat(settings.Log.Format),
				cfg.WithLogOutput(cmd.ErrOrStderr()),
				cfg.WithStoreFile(settings.Store.Path),
				cfg.WithQueryListener(
					listener.WithAddress(settings.Listener.Address),
					listener.WithTimeouts(settings.Listener.ReadTimeout, settings.Listener.WriteTimeout),
				),
			}

			if settings.Store.Watch {
				opts = append(opts, cfg.WithWatch(settings.Store.Debounce))
			}

			app := cfg.NewApp(opts...)

			err = app.Err()
			if err != nil {
				return fmt.Errorf("build app: %w", err)
			}

			app.Run()

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.settings, "settings", "", "YAML settings file")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", ".cfg file to serve")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address, host:port")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "reload the file when it changes")

	return cmd
}
