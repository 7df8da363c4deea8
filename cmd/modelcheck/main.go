// Command modelcheck validates a price model artifact against the form
// vocabulary and runs one-off estimates from the command line.
package main

import (
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
