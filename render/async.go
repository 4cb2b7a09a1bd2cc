package render

import (
	"context"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/fx/settings"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of an asynchronous render.
type Result struct {
	Buffer *buffer.Buffer
	Err    error
}

// Go runs Render on a new goroutine. The returned channel receives exactly
// one Result and is then closed.
func Go(ctx context.Context, src *buffer.Buffer, s settings.EffectSettings, opts ...Option) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		b, err := Render(ctx, src, s, opts...)
		ch <- Result{Buffer: b, Err: err}
	}()
	return ch
}

// Job is one input to Batch.
type Job struct {
	Source   *buffer.Buffer
	Settings settings.EffectSettings
	Options  []Option
}

// Batch renders jobs concurrently with at most limit renders in flight
// (limit <= 0 means no limit). Outputs are returned in job order. The
// first failure cancels the remaining jobs and is returned.
func Batch(ctx context.Context, jobs []Job, limit int) ([]*buffer.Buffer, error) {
	out := make([]*buffer.Buffer, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			b, err := Render(gctx, job.Source, job.Settings, job.Options...)
			if err != nil {
				return err
			}
			out[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
