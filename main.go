// Command goseed encrypts files and messages with the SEED block cipher.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/goseed/internal/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
