package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata of the strn CLI, overridable with -ldflags "-X strn/internal/version.GitCommit=...".
var (
	Major = "0"
	Minor = "3"
	Patch = "0"
	Pre   = "dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String returns the plain semantic version, e.g. "0.3.0-dev".
func String() string {
	v := Major + "." + Minor + "." + Patch
	if Pre != "" {
		v += "-" + Pre
	}
	return v
}

// Colored renders the version with one color per component.
func Colored() string {
	var b strings.Builder
	b.WriteString(color.New(color.FgYellow, color.Bold).Sprint(Major))
	b.WriteByte('.')
	b.WriteString(color.New(color.FgGreen, color.Bold).Sprint(Minor))
	b.WriteByte('.')
	b.WriteString(color.New(color.FgBlue, color.Bold).Sprint(Patch))
	if Pre != "" {
		b.WriteString("-" + Pre)
	}
	return b.String()
}
