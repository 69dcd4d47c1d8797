// Package main is the entry point for the typex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hasbyte1/go-typex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "typex:", err)
		os.Exit(1)
	}
}
