package strn

import (
	"fmt"
	"io"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// readToken reads up to n bytes from r, stopping after the first
// whitespace byte (which is consumed) or at EOF.
func readToken(r io.ByteReader, n int) (w uint64, count int, err error) {
	for count < n {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && count > 0 {
				return w, count, nil
			}
			return w, count, err
		}
		if isSpace(c) {
			break
		}
		w = withByte(w, count, c)
		count++
	}
	return w, count, nil
}

// scanToken is the fmt.Scanner half of the text codec: leading space is
// skipped and the whole whitespace-delimited token is consumed.
func scanToken(state fmt.ScanState) ([]byte, error) {
	state.SkipSpace()
	tok, err := state.Token(false, func(r rune) bool {
		return r >= 0x80 || !isSpace(byte(r))
	})
	if err != nil {
		return nil, err
	}
	if len(tok) == 0 {
		return nil, io.EOF
	}
	return tok, nil
}

func writeContent(w io.Writer, content []byte) (int64, error) {
	n, err := w.Write(content)
	return int64(n), err
}

// WriteTo writes the Len() content bytes of s to w.
func (s String64) WriteTo(w io.Writer) (int64, error) { return writeContent(w, s.Bytes()) }

// ReadToken replaces s with at most MaxLen64 bytes read from r. Reading
// stops after a whitespace byte or at EOF; io.EOF is returned only when
// nothing was read.
func (s *String64) ReadToken(r io.ByteReader) error {
	w, _, err := readToken(r, MaxLen64)
	*s = String64(w)
	return err
}

// Scan implements fmt.Scanner.
func (s *String64) Scan(state fmt.ScanState, _ rune) error {
	tok, err := scanToken(state)
	if err != nil {
		return err
	}
	*s = New64Bytes(tok)
	return nil
}

func (s String64) MarshalText() ([]byte, error) { return s.Bytes(), nil }

func (s *String64) UnmarshalText(text []byte) error {
	*s = New64Bytes(text)
	return nil
}

func (s String56) WriteTo(w io.Writer) (int64, error) { return writeContent(w, s.Bytes()) }

// ReadToken replaces s with at most MaxLen56 bytes read from r and stores
// the number of bytes read as the length.
func (s *String56) ReadToken(r io.ByteReader) error {
	w, n, err := readToken(r, MaxLen56)
	*s = make56(w, n)
	return err
}

func (s *String56) Scan(state fmt.ScanState, _ rune) error {
	tok, err := scanToken(state)
	if err != nil {
		return err
	}
	*s = New56Bytes(tok)
	return nil
}

func (s String56) MarshalText() ([]byte, error) { return s.Bytes(), nil }

func (s *String56) UnmarshalText(text []byte) error {
	*s = New56Bytes(text)
	return nil
}

func (s String32) WriteTo(w io.Writer) (int64, error) { return writeContent(w, s.Bytes()) }

func (s *String32) ReadToken(r io.ByteReader) error {
	w, _, err := readToken(r, MaxLen32)
	*s = String32(w)
	return err
}

func (s *String32) Scan(state fmt.ScanState, _ rune) error {
	tok, err := scanToken(state)
	if err != nil {
		return err
	}
	*s = New32Bytes(tok)
	return nil
}

func (s String32) MarshalText() ([]byte, error) { return s.Bytes(), nil }

func (s *String32) UnmarshalText(text []byte) error {
	*s = New32Bytes(text)
	return nil
}
