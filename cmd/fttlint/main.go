// Package main provides the entry point for fttlint, a command-line
// front end for parsing, validating, and querying FamilyTree-Text (FTT)
// documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fttlint: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string
	var logLevel string

	root := &cobra.Command{
		Use:           "fttlint",
		Short:         "Parse, validate, and query FamilyTree-Text documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&format, "format", "text", "output format: text|json")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: error|warn|info|debug|trace")

	root.AddCommand(newParseCmd(&format, &logLevel))
	root.AddCommand(newKinshipCmd(&format, &logLevel))

	return root
}
