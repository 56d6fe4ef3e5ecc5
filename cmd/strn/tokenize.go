package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"strn/internal/batch"
	"strn/tokenizer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file...]",
	Short: "Split files into tokens",
	Long: `Tokenize splits each file (stdin when none is given) into maximal runs of
non-separator bytes. Runs of separators never produce empty tokens.`,
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("sep", "", `separator bytes, Go escapes allowed (e.g. " \t,"); empty means whitespace`)
	tokenizeCmd.Flags().Bool("punct", false, "also split on ASCII punctuation")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("count", false, "print token counts only")
	tokenizeCmd.Flags().Bool("nfc", false, "normalize input to Unicode NFC first")
	tokenizeCmd.Flags().Int("jobs", 0, "max files tokenized in parallel (0=GOMAXPROCS)")
	tokenizeCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

type tokenizeOutput struct {
	File   string   `json:"file"`
	Count  int      `json:"count"`
	Tokens []string `json:"tokens,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg := current.cfg.Tokenize
	flags := cmd.Flags()

	sepSpec := cfg.Separators
	if flags.Changed("sep") {
		sepSpec, _ = flags.GetString("sep")
	}
	punct, _ := flags.GetBool("punct")
	sep, err := parseSeparator(sepSpec, punct)
	if err != nil {
		return err
	}

	format := cfg.Format
	if flags.Changed("format") {
		format, _ = flags.GetString("format")
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	countOnly, _ := flags.GetBool("count")

	opts := batch.Options{Separator: sep, Jobs: cfg.Jobs, NFC: cfg.NFC, Stop: cfg.Stop}
	if flags.Changed("nfc") {
		opts.NFC, _ = flags.GetBool("nfc")
	}
	if flags.Changed("jobs") {
		opts.Jobs, _ = flags.GetInt("jobs")
	}
	uiValue, _ := flags.GetString("ui")
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	phase := current.timer.Begin("tokenize")
	var res batch.Result
	switch {
	case len(args) == 0:
		fr := batch.TokenizeReader(cmd.Context(), "-", cmd.InOrStdin(), opts)
		res = batch.Result{Files: []batch.FileResult{fr}, Total: len(fr.Tokens), Bytes: int64(fr.Bytes)}
	case shouldUseTUI(mode, len(args)):
		res, err = runBatchWithUI(cmd.Context(), "tokenize", args, opts)
	default:
		res, err = batch.TokenizeFiles(cmd.Context(), args, opts)
	}
	current.timer.Count(phase, res.Total, res.Bytes)
	current.timer.End(phase, fmt.Sprintf("%d files", len(res.Files)))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	phase = current.timer.Begin("output")
	if format == "json" {
		err = writeTokensJSON(os.Stdout, res, countOnly)
	} else {
		err = writeTokensPretty(os.Stdout, res, countOnly)
	}
	current.timer.End(phase, "")
	if err != nil {
		return err
	}

	failed := res.Failed()
	for _, f := range failed {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("error:"), f.Err)
	}
	notef("%d tokens in %d files\n", res.Total, len(res.Files)-len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), len(res.Files))
	}
	return nil
}

// parseSeparator turns the --sep value into a Separator. A nil result
// selects the whitespace default.
func parseSeparator(spec string, punct bool) (tokenizer.Separator, error) {
	if strings.Contains(spec, `\`) {
		unq, err := strconv.Unquote(`"` + strings.ReplaceAll(spec, `"`, `\"`) + `"`)
		if err != nil {
			return nil, fmt.Errorf("invalid --sep %q: %w", spec, err)
		}
		spec = unq
	}
	switch {
	case punct && spec == "":
		return tokenizer.Func(tokenizer.IsSpaceOrPunct), nil
	case punct:
		set := tokenizer.NewCharSet(spec)
		return tokenizer.Func(func(c byte) bool { return set.IsSep(c) || tokenizer.IsPunct(c) }), nil
	case spec == "":
		return nil, nil
	case len(spec) == 1:
		return tokenizer.SeparatorOf(spec[0]), nil
	}
	return tokenizer.SeparatorOf(spec), nil
}

func writeTokensPretty(out io.Writer, res batch.Result, countOnly bool) error {
	multi := len(res.Files) > 1
	for _, f := range res.Files {
		if f.Err != nil {
			continue
		}
		if countOnly {
			if _, err := fmt.Fprintf(out, "%8d %s\n", len(f.Tokens), f.Path); err != nil {
				return err
			}
			continue
		}
		if multi {
			if _, err := fmt.Fprintf(out, "==> %s <==\n", f.Path); err != nil {
				return err
			}
		}
		for _, tok := range f.Tokens {
			if _, err := fmt.Fprintln(out, tok); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTokensJSON(out io.Writer, res batch.Result, countOnly bool) error {
	outputs := make([]tokenizeOutput, 0, len(res.Files))
	for _, f := range res.Files {
		o := tokenizeOutput{File: f.Path, Count: len(f.Tokens)}
		if !countOnly {
			o.Tokens = f.Tokens
		}
		if f.Err != nil {
			o.Error = f.Err.Error()
		}
		outputs = append(outputs, o)
	}
	return writeJSON(out, outputs)
}
