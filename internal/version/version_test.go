package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestString(t *testing.T) {
	orig := [...]string{Major, Minor, Patch, Pre}
	t.Cleanup(func() { Major, Minor, Patch, Pre = orig[0], orig[1], orig[2], orig[3] })

	Major, Minor, Patch, Pre = "1", "2", "3", ""
	if got := String(); got != "1.2.3" {
		t.Errorf("String() = %q, want %q", got, "1.2.3")
	}
	Pre = "rc1"
	if got := String(); got != "1.2.3-rc1" {
		t.Errorf("String() = %q, want %q", got, "1.2.3-rc1")
	}
}

func TestColoredWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	// без цвета Colored совпадает с String
	if Colored() != String() {
		t.Errorf("Colored() = %q, want %q", Colored(), String())
	}
}

func TestOptionalFieldsDefaultEmpty(t *testing.T) {
	if GitCommit != "" || BuildDate != "" {
		t.Errorf("GitCommit=%q BuildDate=%q, want empty defaults", GitCommit, BuildDate)
	}
}
