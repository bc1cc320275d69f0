package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// execute runs the root command, handling any errors that occur during
// execution by printing them to stderr and exiting non-zero.
func execute() {
	rootCmd := &cobra.Command{
		Use:     "asinine",
		Short:   "A reader for ASN.1 DER/BER TLV structures",
		Version: version,
	}

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newVerifyOIDCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readInput reads path, treating "-" or "" as stdin.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
