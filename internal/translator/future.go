package translator

import (
	"context"
)

// Future is the result of one in-flight translation started with Go. It
// replaces fire-and-forget dispatch: completion is observable through Done
// and the call is cancelled by cancelling the context passed to Go.
type Future struct {
	done   chan struct{}
	cancel context.CancelFunc

	result *TranslationResult
	err    error
}

// Go runs client.Translate on its own goroutine and returns immediately.
// Cancel the returned future (or the parent context) to abort the call.
func Go(ctx context.Context, client Client, req TranslateRequest) *Future {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(f.done)
		defer cancel()
		f.result, f.err = client.Translate(ctx, req)
	}()

	return f
}

// Done is closed when the call has finished, for use in select loops.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the call finishes and returns its outcome. It is safe
// to call from multiple goroutines and after completion.
func (f *Future) Result() (*TranslationResult, error) {
	<-f.done
	return f.result, f.err
}

// Cancel aborts the in-flight call. The future still completes, with a
// network-kind error from the cancelled context.
func (f *Future) Cancel() {
	f.cancel()
}
