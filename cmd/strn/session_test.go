package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"strn/internal/observ"
	"strn/internal/trace"
)

func TestApplyColorMode(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	if err := applyColorMode("on"); err != nil || color.NoColor {
		t.Errorf("on: NoColor=%v err=%v", color.NoColor, err)
	}
	if err := applyColorMode("OFF"); err != nil || !color.NoColor {
		t.Errorf("off: NoColor=%v err=%v", color.NoColor, err)
	}
	if err := applyColorMode("sometimes"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[encode]\nwidth = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Encode.Width != 32 || cfg.Path != path {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestDumpRingBothMode(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelDebug, Mode: trace.ModeBoth, Output: io.Discard})
	if err != nil {
		t.Fatal(err)
	}
	trace.Point(tr, trace.ScopeCommand, "encode", "before failure", 0)

	var buf bytes.Buffer
	dumpRing(tr, &buf)
	out := buf.String()
	if !strings.Contains(out, "last events before failure") || !strings.Contains(out, "encode") {
		t.Errorf("dump = %q", out)
	}

	buf.Reset()
	dumpRing(trace.Nop, &buf)
	if buf.Len() != 0 {
		t.Errorf("stream-only tracer dumped %q", buf.String())
	}
}

func TestPrintTimings(t *testing.T) {
	var buf bytes.Buffer
	printTimings(&buf, observ.NewTimer())
	if buf.Len() != 0 {
		t.Errorf("empty timer printed %q", buf.String())
	}

	tm := observ.NewTimer()
	tm.End(tm.Begin("tokenize"), "3 tokens")
	printTimings(&buf, tm)
	if !strings.Contains(buf.String(), "tokenize") {
		t.Errorf("timings = %q", buf.String())
	}
}

func TestRenderVersion(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	renderVersionPretty(&buf, versionOptions{showHash: true})
	if !strings.HasPrefix(buf.String(), "strn ") || !strings.Contains(buf.String(), "commit: unknown") {
		t.Errorf("pretty = %q", buf.String())
	}

	buf.Reset()
	if err := renderVersionJSON(&buf, versionOptions{}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "strn" || payload.GitCommit != "" {
		t.Errorf("payload = %+v", payload)
	}
}
