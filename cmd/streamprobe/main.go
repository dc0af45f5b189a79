// streamprobe - stdin token/line parsing probe
//
// streamprobe reads an integer token and the following line from standard
// input and prints them bracketed, aborting if the stream enters a failed state.
package main

import (
	"os"

	"github.com/ccollicutt/streamprobe/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
