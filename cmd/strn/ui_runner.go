package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"strn/internal/batch"
	"strn/internal/ui"
)

type batchOutcome struct {
	result batch.Result
	err    error
}

// runBatchWithUI runs TokenizeFiles while a progress view renders its events on stderr.
func runBatchWithUI(ctx context.Context, title string, files []string, opts batch.Options) (batch.Result, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Progress = batch.ChannelSink{Ch: events}
		res, err := batch.TokenizeFiles(ctx, files, opts)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the workers from blocking on a view that is gone
		for range events {
		}
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
