// Command cfgq inspects, formats, checks and serves .cfg configuration files.
package main

import (
	"os"

	"github.com/0xalexb/hjarta-cfg/cmd/cfgq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
