package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/example/docmaker/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd(os.Stdin, os.Stdout, os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
