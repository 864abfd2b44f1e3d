package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pbwire",
		Short: "Inspect protobuf wire-format data",
		Long: `pbwire decodes raw protobuf wire-format blobs without a schema.

It walks the key/value structure of a message, splits each tag into
field number and wire type, and prints the fields in a readable,
protoscope-like form. Length-delimited payloads that parse cleanly as
messages are expanded recursively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		dumpCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
