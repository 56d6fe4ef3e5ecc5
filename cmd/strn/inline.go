package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"strn"
	"strn/internal/config"
)

// inlineString is the part of the String32/56/64 surface the commands print.
type inlineString interface {
	io.WriterTo
	Len() int
	MaxLen() int
	IsPrintable() bool
	Hash() uint64
	String() string
}

// tokenReader constrains *T to an inline string that reads itself from a stream.
type tokenReader[T any] interface {
	*T
	inlineString
	ReadToken(io.ByteReader) error
}

// encoded is one row of encode/decode output.
type encoded struct {
	Text      string `json:"text"`
	Width     int    `json:"width"`
	Hex       string `json:"hex"`
	Len       int    `json:"len"`
	Printable bool   `json:"printable"`
	Truncated bool   `json:"truncated,omitempty"`

	value inlineString
}

func describe(width int, s inlineString, truncated bool) encoded {
	digits := 16
	if width == 32 {
		digits = 8
	}
	return encoded{
		Text:      s.String(),
		Width:     width,
		Hex:       fmt.Sprintf("0x%0*x", digits, s.Hash()),
		Len:       s.Len(),
		Printable: s.IsPrintable(),
		Truncated: truncated,
		value:     s,
	}
}

// encodeText packs text at the given width. With literal set, text that
// does not fit yields the #BAD sentinel instead of being truncated.
func encodeText(width int, text string, literal bool) encoded {
	var s inlineString
	switch width {
	case 32:
		if literal {
			s = strn.Literal32(text)
		} else {
			s = strn.New32(text)
		}
	case 56:
		if literal {
			s = strn.Literal56(text)
		} else {
			s = strn.New56(text)
		}
	default:
		if literal {
			s = strn.Literal64(text)
		} else {
			s = strn.New64(text)
		}
	}
	return describe(width, s, !literal && len(text) > s.MaxLen())
}

var errOverflow = errors.New("value does not fit")

// decodeRaw reinterprets an integer as an inline string.
func decodeRaw(width int, raw uint64) (encoded, error) {
	switch width {
	case 32:
		u, err := safecast.Conv[uint32](raw)
		if err != nil {
			return encoded{}, fmt.Errorf("%w in String32: %#x", errOverflow, raw)
		}
		return describe(width, strn.FromUint32(u), false), nil
	case 56:
		return describe(width, strn.FromUint56(raw), false), nil
	default:
		return describe(width, strn.FromUint64(raw), false), nil
	}
}

// readTokens streams whitespace-separated tokens through the text codec.
// Words longer than the capacity come out as consecutive chunks.
func readTokens(width int, r io.Reader, fn func(inlineString)) error {
	br := bufio.NewReader(r)
	switch width {
	case 32:
		return readAll[strn.String32](br, fn)
	case 56:
		return readAll[strn.String56](br, fn)
	default:
		return readAll[strn.String64](br, fn)
	}
}

func readAll[T any, P tokenReader[T]](r io.ByteReader, fn func(inlineString)) error {
	for {
		var s T
		p := P(&s)
		err := p.ReadToken(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		// runs of whitespace read as empty tokens
		if p.Len() > 0 {
			fn(p)
		}
	}
}

// resolveWidth returns --width if given, else the configured width.
func resolveWidth(cmd *cobra.Command) (int, error) {
	width := current.cfg.Encode.Width
	if cmd.Flags().Changed("width") {
		w, err := cmd.Flags().GetInt("width")
		if err != nil {
			return 0, fmt.Errorf("failed to get width flag: %w", err)
		}
		width = w
	}
	if !config.ValidWidth(width) {
		return 0, fmt.Errorf("invalid width %d (expected 32|56|64)", width)
	}
	return width, nil
}

var (
	hexColor   = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

func writePretty(out io.Writer, rows []encoded) {
	for _, r := range rows {
		fmt.Fprintf(out, "%-12q %s  len=%d", r.Text, hexColor.Sprint(r.Hex), r.Len)
		if !r.Printable {
			fmt.Fprintf(out, "  %s", warnColor.Sprint("non-printable"))
		}
		if r.Truncated {
			fmt.Fprintf(out, "  %s", warnColor.Sprint("truncated"))
		}
		fmt.Fprintln(out)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeText writes each row's raw content on its own line.
func writeText(out io.Writer, rows []encoded) error {
	for _, r := range rows {
		if _, err := r.value.WriteTo(out); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(out io.Writer, format string, rows []encoded) error {
	switch format {
	case "pretty":
		writePretty(out, rows)
		return nil
	case "json":
		if rows == nil {
			rows = []encoded{}
		}
		return writeJSON(out, rows)
	case "text":
		return writeText(out, rows)
	}
	return fmt.Errorf("unknown format: %s", format)
}
