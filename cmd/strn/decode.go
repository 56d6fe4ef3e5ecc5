package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] integer...",
	Short: "Print the text held by inline string integers",
	Long:  `Decode accepts decimal, 0x hex, 0o octal or 0b binary integers.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().Int("width", 64, "string width in bits (32|56|64; default from strn.toml)")
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json|text)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	width, err := resolveWidth(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	rows := make([]encoded, 0, len(args))
	for _, arg := range args {
		raw, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		row, err := decodeRaw(width, raw)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return writeRows(os.Stdout, format, rows)
}
