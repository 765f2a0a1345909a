// Command flowcore is the CLI exerciser for the lattice/ir/cfg library.
package main

import (
	"fmt"
	"os"

	"github.com/redex-go/flowcore/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
