// Command ksum finds the expense report entries that sum to a target.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/ksum/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
