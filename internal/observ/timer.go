package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed step of a command together with the volume it
// processed: strings encoded, tokens produced, input bytes consumed.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Items int
	Bytes int64
	Note  string
}

// Timer collects the phases of a command for --timings. It is not safe for
// concurrent use; batch workers report totals once the phase is over.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// Count adds processed items and bytes to the phase at idx.
func (t *Timer) Count(idx, items int, bytes int64) {
	if p := t.phase(idx); p != nil {
		p.Items += items
		p.Bytes += bytes
	}
}

// End stops the clock of the phase at idx. Unknown indices are ignored.
func (t *Timer) End(idx int, note string) {
	if p := t.phase(idx); p != nil {
		p.Dur = time.Since(p.Start)
		p.Note = note
	}
}

func (t *Timer) phase(idx int) *Phase {
	if idx < 0 || idx >= len(t.phases) {
		return nil
	}
	return &t.phases[idx]
}

// PhaseReport is the serializable form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Items      int     `json:"items,omitempty"`
	Bytes      int64   `json:"bytes,omitempty"`
	MBPerSec   float64 `json:"mb_per_sec,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates the timer for JSON output.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Items   int           `json:"items"`
	Bytes   int64         `json:"bytes"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		report.Items += p.Items
		report.Bytes += p.Bytes
		report.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: Millis(p.Dur),
			Items:      p.Items,
			Bytes:      p.Bytes,
			MBPerSec:   Throughput(p.Bytes, p.Dur),
			Note:       p.Note,
		}
	}
	report.TotalMS = Millis(total)
	return report
}

// Summary renders the phases as an aligned table. Volume columns are shown
// only for phases that counted something.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Items > 0 || p.Bytes > 0 {
			fmt.Fprintf(&b, "  %7d items  %9s", p.Items, FormatBytes(p.Bytes))
			if p.MBPerSec > 0 {
				fmt.Fprintf(&b, "  %8.2f MB/s", p.MBPerSec)
			}
		}
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-10s %8.2f ms", "total", report.TotalMS)
	if report.Items > 0 || report.Bytes > 0 {
		fmt.Fprintf(&b, "  %7d items  %9s", report.Items, FormatBytes(report.Bytes))
	}
	b.WriteByte('\n')
	return b.String()
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Throughput is bytes per second over d in MB (10^6 bytes). Zero when
// nothing was measured.
func Throughput(bytes int64, d time.Duration) float64 {
	if bytes <= 0 || d <= 0 {
		return 0
	}
	return float64(bytes) / 1e6 / d.Seconds()
}

// FormatBytes renders n with a binary unit: 512 B, 1.5 KiB, 3.0 MiB.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 4; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTP"[exp])
}
