// SPDX-License-Identifier: MIT

// Command linsys solves linear systems by Gauss and Gauss-Jordan elimination.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linsys/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
