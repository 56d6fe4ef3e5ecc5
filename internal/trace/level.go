package trace

import (
	"fmt"
	"strings"
)

// Level controls how much is recorded.
type Level uint8

const (
	LevelOff     Level = iota // nothing
	LevelError                // error points only
	LevelCommand              // command spans
	LevelFile                 // per-file spans
	LevelDebug                // everything
)

var levelNames = [...]string{
	LevelOff:     "off",
	LevelError:   "error",
	LevelCommand: "command",
	LevelFile:    "file",
	LevelDebug:   "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == want {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected off|error|command|file|debug)", s)
}

// Allows reports whether an event of the given kind and scope is recorded.
func (l Level) Allows(kind Kind, scope Scope) bool {
	switch {
	case l == LevelOff:
		return false
	case kind == KindError:
		return true
	case l == LevelError:
		return false
	case l == LevelCommand:
		return scope <= ScopeCommand
	case l == LevelFile:
		return scope <= ScopeFile
	}
	return true
}
