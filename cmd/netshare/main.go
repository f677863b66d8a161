// Package main is the entry point for the netshare CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/netshare/internal/app"
	"github.com/runoshun/netshare/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps its error to an exit status.
// Operation results carry their own code (254, 1 or the net use exit code);
// any other error exits with 1.
func run(args []string) int {
	rootCmd := cli.NewRootCommand(app.New, version)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err)

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code()
	}
	return 1
}
