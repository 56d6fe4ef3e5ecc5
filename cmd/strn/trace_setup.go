package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"strn/internal/trace"
)

// dumpRing writes the buffered events of a ring or both-mode tracer to w.
func dumpRing(tracer trace.Tracer, w io.Writer) {
	ring := trace.RingOf(tracer)
	if ring == nil {
		return
	}
	fmt.Fprintln(w, "trace: last events before failure:")
	if err := ring.Dump(w, trace.FormatText); err != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", err)
	}
}

// setupTracing builds the tracer from the trace flags. The returned cleanup
// flushes and closes it; in ring and both modes the buffered events are dumped only
// when the command failed.
func setupTracing(cmd *cobra.Command) (trace.Tracer, func(failed bool), error) {
	pf := cmd.Root().PersistentFlags()

	output, err := pf.GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := pf.GetString("trace-mode")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := pf.GetInt("trace-ring-size")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, err
	}
	// --trace without a level records commands
	if level == trace.LevelOff && output != "" && !pf.Changed("trace-level") {
		level = trace.LevelCommand
	}
	if level == trace.LevelOff {
		return trace.Nop, func(bool) {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	errOut := cmd.ErrOrStderr()
	cleanup := func(failed bool) {
		if failed {
			dumpRing(tracer, errOut)
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	}
	return tracer, cleanup, nil
}
