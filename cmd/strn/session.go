package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"strn/internal/config"
	"strn/internal/observ"
	"strn/internal/trace"
)

// session is the per-invocation state shared by all commands.
type session struct {
	cfg      config.Config
	timer    *observ.Timer
	timings  bool
	quiet    bool
	cleanups []func(failed bool)
}

var current = newSession()

func newSession() *session {
	return &session{cfg: config.Default(), timer: observ.NewTimer()}
}

// openSession runs before every command: it applies the color mode, loads
// the config and starts tracing and profiling.
func openSession(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()

	colorFlag, err := pf.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := applyColorMode(colorFlag); err != nil {
		return err
	}
	if current.quiet, err = pf.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if current.timings, err = pf.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cfgPath, err := pf.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	phase := current.timer.Begin("config")
	current.cfg, err = loadConfig(cfgPath)
	current.timer.End(phase, current.cfg.Path)
	if err != nil {
		return err
	}

	tracer, closeTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	current.cleanups = append(current.cleanups, closeTrace)

	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	current.cleanups = append(current.cleanups, func(bool) { stopProf() })

	span := trace.Begin(tracer, trace.ScopeCommand, cmd.CommandPath(), 0)
	ctx := trace.WithSpan(trace.WithTracer(cmd.Context(), tracer), span)
	cmd.SetContext(ctx)
	current.cleanups = append(current.cleanups, func(failed bool) {
		if failed {
			span.End("failed")
			return
		}
		span.End("ok")
	})
	return nil
}

// closeSession undoes openSession in reverse order and prints timings.
func closeSession(err error) {
	for _, fn := range slices.Backward(current.cleanups) {
		fn(err != nil)
	}
	current.cleanups = nil
	if current.timings {
		printTimings(os.Stderr, current.timer)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Discover(wd)
}

func applyColorMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// notef prints a non-essential message to stderr unless --quiet is set.
func notef(format string, args ...any) {
	if current.quiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
