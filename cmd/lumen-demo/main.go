// Command lumen-demo walks through the lumen logger: default setup, a custom
// console and file setup, and runtime reconfiguration.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
