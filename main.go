// Command dirtotal prints the total size of a directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirtotal/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dirtotal: %v\n", err)
		os.Exit(1)
	}
}
