package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"strn"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[encode]
width = 32

[tokenize]
separators = " ,"
format = "JSON"
jobs = 4
stop = ["the", "a", "overlongword"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 32, cfg.Encode.Width)
	require.Equal(t, " ,", cfg.Tokenize.Separators)
	require.Equal(t, "json", cfg.Tokenize.Format)
	require.Equal(t, 4, cfg.Tokenize.Jobs)
	require.False(t, cfg.Tokenize.NFC)
	require.Equal(t, []strn.String64{strn.New64("the"), strn.New64("a"), strn.New64("overlong")}, cfg.Tokenize.Stop)
	require.Equal(t, path, cfg.Path)
	require.Empty(t, cfg.Dict.Path)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"width", "[encode]\nwidth = 48\n"},
		{"format", "[tokenize]\nformat = \"xml\"\n"},
		{"jobs", "[tokenize]\njobs = -1\n"},
		{"syntax", "[encode\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, t.TempDir(), "[encode]\nwdith = 32\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownKey))
	require.Contains(t, err.Error(), "encode.wdith")
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[encode]\nwidth = 56\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover(nested)
	require.NoError(t, err)
	require.Equal(t, 56, cfg.Encode.Width)
	require.Equal(t, "pretty", cfg.Tokenize.Format)
}

func TestDiscoverDefaults(t *testing.T) {
	path, ok, err := Find(t.TempDir())
	require.NoError(t, err)
	if ok {
		t.Skipf("a %s above the temp dir shadows the test: %s", FileName, path)
	}
	cfg, err := Discover(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}
