// Package batch tokenizes many inputs in parallel.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"strn"
	"strn/internal/trace"
	"strn/tokenizer"
)

// TokenizeFiles tokenizes every file. A file that cannot be read is reported
// in its FileResult and does not stop the others; only cancellation of ctx
// fails the whole run.
func TokenizeFiles(ctx context.Context, files []string, opts Options) (Result, error) {
	res := Result{Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return res, nil
	}
	opts = opts.withDefaults()
	for _, path := range files {
		opts.emit(Event{File: path, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns its index, no lock needed
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Files[i] = tokenizeFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	for _, f := range res.Files {
		res.Total += len(f.Tokens)
		res.Bytes += int64(f.Bytes)
	}
	return res, nil
}

// TokenizeReader tokenizes everything read from r under the given name.
func TokenizeReader(ctx context.Context, name string, r io.Reader, opts Options) FileResult {
	opts = opts.withDefaults()
	return run(ctx, name, opts, func() ([]byte, error) { return io.ReadAll(r) })
}

func tokenizeFile(ctx context.Context, path string, opts Options) FileResult {
	return run(ctx, path, opts, func() ([]byte, error) { return os.ReadFile(path) })
}

func run(ctx context.Context, name string, opts Options, read func() ([]byte, error)) FileResult {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeFile, name, trace.CurrentSpan(ctx))
	start := time.Now()
	opts.emit(Event{File: name, Status: StatusWorking})

	data, err := read()
	if err != nil {
		err = fmt.Errorf("failed to read %s: %w", name, err)
		trace.Error(tr, trace.ScopeFile, name, err, span.ID())
		span.End("error")
		opts.emit(Event{File: name, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return FileResult{Path: name, Err: err}
	}

	tokens := opts.split(data)
	trace.Point(tr, trace.ScopeToken, "split", strconv.Itoa(len(tokens))+" tokens", span.ID())
	span.WithExtra("bytes", strconv.Itoa(len(data))).WithExtra("tokens", strconv.Itoa(len(tokens))).End("ok")
	opts.emit(Event{File: name, Status: StatusDone, Tokens: len(tokens), Elapsed: time.Since(start)})
	return FileResult{Path: name, Tokens: tokens, Bytes: len(data)}
}

func (o Options) withDefaults() Options {
	if o.Separator == nil {
		o.Separator = tokenizer.Func(tokenizer.IsSpace)
	}
	return o
}

func (o Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(ev)
	}
}

func (o Options) split(data []byte) []string {
	if o.NFC {
		data = norm.NFC.Bytes(data)
	}
	stop := make(map[strn.String64]struct{}, len(o.Stop))
	for _, s := range o.Stop {
		stop[s] = struct{}{}
	}

	var out []string
	for tok := range tokenizer.New(string(data), o.Separator).All() {
		if len(tok) <= strn.MaxLen64 {
			if _, drop := stop[strn.New64(tok)]; drop {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
