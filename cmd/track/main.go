// Package main provides the tracking lookup command line client.
//
// Usage:
//
//	track lookup [--carrier estes] [--mock] [--raw] [--link] <pro>
//
// Exit codes:
//   - 0: record found
//   - 1: usage or input error
//   - 2: shipment not found
//   - 3: carrier, configuration or transport failure
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	exitUsage    = 1
	exitNotFound = 2
	exitFailure  = 3
)

func main() {
	app := &cli.App{
		Name:  "track",
		Usage: "Look up carrier shipments by PRO number",
		Commands: []*cli.Command{
			lookupCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
