package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"strn/internal/trace"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] [text...]",
	Short: "Pack text into inline string integers",
	Long: `Encode packs each argument into a String32, String56 or String64 and prints
its integer. Without arguments, whitespace-separated tokens are read from stdin.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().Int("width", 64, "string width in bits (32|56|64; default from strn.toml)")
	encodeCmd.Flags().Bool("literal", false, "emit the #BAD sentinel instead of truncating")
	encodeCmd.Flags().String("format", "pretty", "output format (pretty|json|text)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	width, err := resolveWidth(cmd)
	if err != nil {
		return err
	}
	literal, err := cmd.Flags().GetBool("literal")
	if err != nil {
		return fmt.Errorf("failed to get literal flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	phase := current.timer.Begin("encode")
	var rows []encoded
	if len(args) > 0 {
		for _, arg := range args {
			rows = append(rows, encodeText(width, arg, literal))
		}
	} else {
		err = readTokens(width, cmd.InOrStdin(), func(s inlineString) {
			rows = append(rows, describe(width, s, false))
		})
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	var in int64
	for _, r := range rows {
		in += int64(len(r.Text))
	}
	current.timer.Count(phase, len(rows), in)
	current.timer.End(phase, fmt.Sprintf("width %d", width))

	tr := trace.FromContext(cmd.Context())
	for _, r := range rows {
		if r.Truncated {
			trace.Point(tr, trace.ScopeFile, "truncated", r.Text, trace.CurrentSpan(cmd.Context()))
			notef("%s %q keeps only %d bytes\n", warnColor.Sprint("warning:"), r.Text, r.Len)
		}
	}
	return writeRows(os.Stdout, format, rows)
}
