package main

import (
	"fmt"
	"os"

	"github.com/Gunvolt24/pokedex/internal/cli"
)

var version = "dev"

func main() {
	cmd := cli.NewRootCommand(version, nil)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
