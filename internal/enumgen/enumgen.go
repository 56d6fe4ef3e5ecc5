// Package enumgen writes Go source for enum types whose values are inline
// strings. Each constant's integer value spells its own name, so the enum
// prints itself without a lookup table.
package enumgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"

	"strn"
)

var (
	ErrNoNames     = errors.New("enumgen: no names given")
	ErrTooLong     = errors.New("enumgen: name does not fit")
	ErrInvalidName = errors.New("enumgen: invalid name")
	ErrDuplicate   = errors.New("enumgen: duplicate name")
	ErrWidth       = errors.New("enumgen: width must be 32, 56 or 64")
)

// Options describes one enum type.
type Options struct {
	Package string
	Type    string
	Width   int // 32, 56 or 64
	Names   []string
	// Import is the import path of the strn package; defaults to "strn".
	Import string
}

// Value is one generated constant.
type Value struct {
	Ident string
	Name  string
	Raw   uint64
}

// Values validates the names and returns the constants in input order.
func Values(opts Options) ([]Value, error) {
	if len(opts.Names) == 0 {
		return nil, ErrNoNames
	}
	if !token.IsIdentifier(opts.Type) {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidName, opts.Type)
	}
	encode, err := encoder(opts.Width)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]string, len(opts.Names))
	// Distinct names may still map to one identifier ("dark_red", "DarkRed").
	idents := map[string]string{opts.Type + "Values": "(values slice)"}
	out := make([]Value, 0, len(opts.Names))
	for _, name := range opts.Names {
		if !validTag(name) {
			return nil, fmt.Errorf("%w: %q (letters, digits and _ only)", ErrInvalidName, name)
		}
		raw, ok := encode(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q is longer than %d bytes", ErrTooLong, name, opts.Width/8)
		}
		if prev, dup := seen[raw]; dup {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicate, prev, name)
		}
		ident := opts.Type + exported(name)
		if prev, dup := idents[ident]; dup {
			return nil, fmt.Errorf("%w: %q and %q both declare %s", ErrDuplicate, prev, name, ident)
		}
		seen[raw] = name
		idents[ident] = name
		out = append(out, Value{Ident: ident, Name: name, Raw: raw})
	}
	return out, nil
}

func encoder(width int) (func(string) (uint64, bool), error) {
	switch width {
	case 32:
		return func(s string) (uint64, bool) {
			v := strn.Literal32(s)
			return uint64(v), v != strn.BadLiteral32 || s == strn.BadLiteral32.String()
		}, nil
	case 56:
		return func(s string) (uint64, bool) {
			v := strn.Literal56(s)
			return uint64(v), v != strn.BadLiteral56 || s == strn.BadLiteral56.String()
		}, nil
	case 64:
		return func(s string) (uint64, bool) {
			v := strn.Literal64(s)
			return uint64(v), v != strn.BadLiteral64 || s == strn.BadLiteral64.String()
		}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrWidth, width)
}

func validTag(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// exported turns "dark_red" into "DarkRed".
func exported(s string) string {
	var b strings.Builder
	upper := true
	for i := range len(s) {
		c := s[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		b.WriteByte(c)
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// Generate returns gofmt-ed Go source declaring the enum type, its constants,
// a slice of all values and a String method.
func Generate(opts Options) ([]byte, error) {
	values, err := Values(opts)
	if err != nil {
		return nil, err
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidName, opts.Package)
	}
	importPath := opts.Import
	if importPath == "" {
		importPath = "strn"
	}

	underlying, strType, fromEnum := "uint64", "String64", "FromEnum64"
	switch opts.Width {
	case 32:
		underlying, strType, fromEnum = "uint32", "String32", "FromEnum32"
	case 56:
		strType, fromEnum = "String56", "FromEnum56"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by strn enumgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	fmt.Fprintf(&buf, "import %q\n\n", importPath)
	fmt.Fprintf(&buf, "// %s values are %s inline strings.\n", opts.Type, strType)
	fmt.Fprintf(&buf, "type %s %s\n\n", opts.Type, underlying)
	buf.WriteString("const (\n")
	for _, v := range values {
		fmt.Fprintf(&buf, "\t%s %s = %#x // %q\n", v.Ident, opts.Type, v.Raw, v.Name)
	}
	buf.WriteString(")\n\n")
	fmt.Fprintf(&buf, "var %sValues = []%s{\n", opts.Type, opts.Type)
	for _, v := range values {
		fmt.Fprintf(&buf, "\t%s,\n", v.Ident)
	}
	buf.WriteString("}\n\n")
	fmt.Fprintf(&buf, "func (v %s) String() string { return strn.%s(v).String() }\n", opts.Type, fromEnum)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("enumgen: format generated source: %w", err)
	}
	return src, nil
}
