// Package config loads strn.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"strn"
)

// FileName is the name looked up by Find.
const FileName = "strn.toml"

// ErrUnknownKey is wrapped by Load when the file has keys strn does not know.
var ErrUnknownKey = errors.New("unknown key")

type Config struct {
	Encode   EncodeConfig   `toml:"encode"`
	Tokenize TokenizeConfig `toml:"tokenize"`
	Dict     DictConfig     `toml:"dict"`

	// Path is the file the config came from, empty for defaults.
	Path string `toml:"-"`
}

type EncodeConfig struct {
	Width int `toml:"width"`
}

type TokenizeConfig struct {
	// Separators is a byte set; empty means ASCII whitespace.
	Separators string `toml:"separators"`
	Format     string `toml:"format"`
	// Jobs caps parallel files; 0 means GOMAXPROCS.
	Jobs int  `toml:"jobs"`
	NFC  bool `toml:"nfc"`
	// Stop lists tokens dropped from the output. Entries are truncated to 8 bytes.
	Stop []strn.String64 `toml:"stop"`
}

type DictConfig struct {
	// Path of the dictionary file; empty means the user cache directory.
	Path string `toml:"path"`
}

// Default returns the configuration used when no strn.toml is found.
func Default() Config {
	return Config{
		Encode:   EncodeConfig{Width: 64},
		Tokenize: TokenizeConfig{Format: "pretty"},
	}
}

// Find walks up from startDir to locate strn.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if meta.IsDefined("tokenize", "format") {
		cfg.Tokenize.Format = strings.ToLower(strings.TrimSpace(cfg.Tokenize.Format))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the nearest strn.toml above startDir, or the defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if !ValidWidth(c.Encode.Width) {
		return fmt.Errorf("invalid [encode].width %d (expected 32|56|64)", c.Encode.Width)
	}
	switch c.Tokenize.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid [tokenize].format %q (expected pretty|json)", c.Tokenize.Format)
	}
	if c.Tokenize.Jobs < 0 {
		return fmt.Errorf("invalid [tokenize].jobs %d: must not be negative", c.Tokenize.Jobs)
	}
	return nil
}

// ValidWidth reports whether w names one of the inline string types.
func ValidWidth(w int) bool {
	return w == 32 || w == 56 || w == 64
}
