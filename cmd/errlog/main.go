// Command errlog inspects the crash log, renders user facing messages and
// demonstrates the crash handler.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
