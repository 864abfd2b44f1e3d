package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/pbwire-dev/pbwire/pkg/scan"
	"github.com/pbwire-dev/pbwire/pkg/wire"
)

func dumpCmd() *cobra.Command {
	var hexInput bool
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Decode a wire-format blob into readable fields",
		Long: `Dump reads a wire-format message from a file (or stdin when no
file is given) and prints one line per field. Length-delimited payloads
are shown as quoted text when printable, expanded as nested messages
when they parse as one, and hex otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			return writeMessage(cmd.OutOrStdout(), data, 0, maxDepth)
		},
	}

	cmd.Flags().BoolVarP(&hexInput, "hex", "x", false, "Treat input as hex text")
	cmd.Flags().IntVarP(&maxDepth, "depth", "d", 4, "Maximum nesting depth to expand")

	return cmd
}

func readInput(args []string, hexInput bool) ([]byte, error) {
	var data []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}

	if hexInput {
		compact := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, string(data))
		return hex.DecodeString(compact)
	}
	return data, nil
}

// writeMessage prints one line per field, recursing into length-delimited
// payloads that parse cleanly as messages, down to depth levels.
func writeMessage(w io.Writer, data []byte, indent, depth int) error {
	pad := strings.Repeat("  ", indent)

	s := scan.New(data)
	for s.Scan() {
		f := s.Field()
		switch f.Type {
		case wire.TypeVarint:
			v, err := f.Varint()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: %d\n", pad, f.Number, v)
		case wire.TypeFixed64:
			v, err := f.Fixed64()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: 0x%016x i64\n", pad, f.Number, v)
		case wire.TypeFixed32:
			v, err := f.Fixed32()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: 0x%08x i32\n", pad, f.Number, v)
		case wire.TypeBytes:
			b, err := f.Bytes()
			if err != nil {
				return err
			}
			switch {
			case depth > 0 && looksLikeMessage(b):
				fmt.Fprintf(w, "%s%d: {\n", pad, f.Number)
				if err := writeMessage(w, b, indent+1, depth-1); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s}\n", pad)
			case printableText(b):
				fmt.Fprintf(w, "%s%d: {%q}\n", pad, f.Number, b)
			default:
				fmt.Fprintf(w, "%s%d: {`%x`}\n", pad, f.Number, b)
			}
		}
	}
	return s.Err()
}

// looksLikeMessage reports whether b scans end-to-end as a sequence of
// well-formed fields. A heuristic: short text like "hi" can also parse as
// a field, which is exactly the ambiguity protoscope-style tools accept.
func looksLikeMessage(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	s := scan.New(b)
	for s.Scan() {
	}
	return s.Err() == nil && s.Pos() == len(b)
}

func printableText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}
