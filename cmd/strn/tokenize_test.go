package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"strn/internal/batch"
)

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		spec  string
		punct bool
		seps  string
		keeps string
	}{
		{"", false, "", ""},
		{",", false, ",", " \t"},
		{` ,`, false, " ,", "\t;"},
		{`\t,`, false, "\t,", " "},
		{"", true, " .;\t", "a"},
		{"|", true, "|.", " "},
	}
	for _, tt := range tests {
		sep, err := parseSeparator(tt.spec, tt.punct)
		if err != nil {
			t.Fatalf("parseSeparator(%q): %v", tt.spec, err)
		}
		if tt.seps == "" {
			if sep != nil {
				t.Errorf("parseSeparator(%q) = %v, want nil default", tt.spec, sep)
			}
			continue
		}
		for i := range len(tt.seps) {
			if !sep.IsSep(tt.seps[i]) {
				t.Errorf("parseSeparator(%q, %v): %q should separate", tt.spec, tt.punct, tt.seps[i])
			}
		}
		for i := range len(tt.keeps) {
			if sep.IsSep(tt.keeps[i]) {
				t.Errorf("parseSeparator(%q, %v): %q should not separate", tt.spec, tt.punct, tt.keeps[i])
			}
		}
	}

	if _, err := parseSeparator(`\q`, false); err == nil {
		t.Error("expected an error for a bad escape")
	}
}

func TestWriteTokens(t *testing.T) {
	res := batch.Result{Files: []batch.FileResult{
		{Path: "a.txt", Tokens: []string{"Some", "text"}},
		{Path: "b.txt", Err: errors.New("boom")},
		{Path: "c.txt", Tokens: []string{"x"}},
	}}

	var buf bytes.Buffer
	if err := writeTokensPretty(&buf, res, false); err != nil {
		t.Fatal(err)
	}
	want := "==> a.txt <==\nSome\ntext\n==> c.txt <==\nx\n"
	if buf.String() != want {
		t.Errorf("pretty output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := writeTokensPretty(&buf, res, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "       2 a.txt\n") {
		t.Errorf("count output = %q", buf.String())
	}

	buf.Reset()
	if err := writeTokensJSON(&buf, res, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"error": "boom"`) || !strings.Contains(buf.String(), `"Some"`) {
		t.Errorf("json output = %s", buf.String())
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
	if shouldUseTUI(uiModeOff, 10) || !shouldUseTUI(uiModeOn, 1) {
		t.Error("explicit modes must win")
	}
}
