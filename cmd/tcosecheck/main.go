package main

import (
	"fmt"
	"os"

	"github.com/veracruz-project/t-cose-go/internal/cli"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
