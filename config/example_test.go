package config_test

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-cfg/config"
	filefetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/file"
	cfgparser "github.com/0xalexb/hjarta-cfg/config/parser/cfg"
	yamlparser "github.com/0xalexb/hjarta-cfg/config/parser/yaml"
)

// ServeSettings mirrors the settings file read by `cfgq serve`.
type ServeSettings struct {
	Address string `yaml:"address" cfg:"address"`
	Watch   bool   `yaml:"watch" cfg:"watch"`
}

// SetDefaults sets default values for the settings.
func (s *ServeSettings) SetDefaults() bool {
	if s.Address == "" {
		s.Address = "127.0.0.1:8080"

		return true
	}

	return false
}

// Validate validates the settings.
func (s *ServeSettings) Validate() error {
	if s.Address == "" {
		return errors.New("address must not be empty")
	}

	return nil
}

type staticFetcher []byte

func (f staticFetcher) Fetch() ([]byte, error) {
	return f, nil
}

func ExampleProvider() {
	provider := config.Provider(&ServeSettings{}, "serve")

	result, err := provider(yamlparser.NewParser(), staticFetcher("serve:\n  watch: true\n"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s, Watch: %t\n", result.Address, result.Watch)
	// Output: Address: 127.0.0.1:8080, Watch: true
}

func ExampleProvider_cfgFormat() {
	data := staticFetcher(`
[defaults]
watch = yes

[serve : defaults]
address = "0.0.0.0:9000"
`)

	result, err := config.Provider(&ServeSettings{}, "serve")(cfgparser.NewParser(), data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s, Watch: %t\n", result.Address, result.Watch)
	// Output: Address: 0.0.0.0:9000, Watch: true
}

func ExampleProvider_fileDataFetcher() {
	fetcher, err := filefetcher.NewFetcher("../testdata/test.cfg")()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	var array []int

	_, err = config.Provider(&array, "name:array")(cfgparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Println(array)
	// Output: [1 2 3]
}
