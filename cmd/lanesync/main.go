package main

import (
	"fmt"
	"os"

	"github.com/tcoates/lanesync/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands render their own formatted errors; this surfaces the
		// exit reason for scripts reading stderr.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
