// Package main is the entry point for the storyline editor.
// It initializes all components and runs the main program loop.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
