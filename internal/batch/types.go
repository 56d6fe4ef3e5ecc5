package batch

import (
	"time"

	"strn"
	"strn/tokenizer"
)

// Status captures the progress of one file.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Status  Status
	Tokens  int
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. OnEvent may be called from several goroutines.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Options controls a batch run.
type Options struct {
	// Separator defaults to tokenizer.Func(tokenizer.IsSpace).
	Separator tokenizer.Separator
	// Jobs caps the number of files read at once; <= 0 means GOMAXPROCS.
	Jobs int
	// NFC normalizes the input to Unicode NFC before splitting.
	NFC bool
	// Stop drops tokens of at most eight bytes equal to one of these.
	Stop []strn.String64
	// Progress receives per-file events; nil discards them.
	Progress Sink
}

// FileResult is the outcome for one input.
type FileResult struct {
	Path   string
	Tokens []string
	Bytes  int // input size before normalization
	Err    error
}

// Result holds the per-file results in input order.
type Result struct {
	Files []FileResult
	Total int
	Bytes int64
}

// Failed returns the files that could not be tokenized.
func (r Result) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}
