package main

import (
	"fmt"
	"io"

	"strn/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil || len(timer.Report().Phases) == 0 {
		return
	}
	// stderr is gone if this fails; nothing left to report to
	_, _ = fmt.Fprint(out, timer.Summary())
}
