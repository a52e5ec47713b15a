package main

import (
	"fmt"
	"os"

	"khidi-briefing/cmd/khidi-briefing/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
