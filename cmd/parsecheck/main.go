// Package main is the entry point for the parsecheck CLI.
package main

import (
	"os"

	"github.com/Maazi-78/parsecheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
