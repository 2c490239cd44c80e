// Command modcheck verifies a sampler engine's modulation routing from
// YAML scenario files.
package main

import (
	"fmt"
	"os"

	"github.com/samplerlab/modcheck/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "modcheck:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
