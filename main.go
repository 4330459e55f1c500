package main

import (
	"fmt"
	"os"

	"github.com/docsgov/docsgov/internal/adapters/inbound/cli"
)

func main() {
	err := cli.Execute()
	code := cli.ExitCode(err)
	if code == cli.ExitError {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}
