// @MX:ANCHOR: [AUTO] main is the fileicons CLI entry point; any command error exits with status 1.
// @MX:REASON: sole entry point of the binary, delegates to cli.Execute
package main

import (
	"os"

	"github.com/alta-arts/fileicons/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
