package main

import (
	"fmt"
	"os"

	"bouncy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bouncy:", err)
		os.Exit(1)
	}
}
