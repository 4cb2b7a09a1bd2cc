package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cwbudde/algo-fxrender/codec/wav"
	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/effectchain"
	"github.com/cwbudde/algo-fxrender/render"
	"github.com/sirupsen/logrus"
)

// run renders every input once with the current settings.
func run(ctx context.Context, o options, inputs []string, log *logrus.Logger) error {
	s, err := o.resolveSettings()
	if err != nil {
		return err
	}

	jobs := make([]render.Job, len(inputs))
	for i, in := range inputs {
		src, err := decodeFile(in)
		if err != nil {
			return err
		}

		if o.plan && i == 0 {
			plan, err := effectchain.Build(effectchain.Context{SampleRate: src.SampleRate()}, s)
			if err != nil {
				return err
			}
			printPlan(plan.Names(), s.PlaybackRate())
		}

		opts := []render.Option{render.WithLogger(log.WithField("input", filepath.Base(in)))}
		if o.seed != 0 {
			opts = append(opts, render.WithSeed(o.seed+int64(i)))
		}
		jobs[i] = render.Job{Source: src, Settings: s, Options: opts}
	}

	start := time.Now()
	outs, err := render.Batch(ctx, jobs, o.jobs)
	if err != nil {
		return err
	}

	for i, b := range outs {
		path := outputPath(inputs[i], o.out, o.outDir)
		if err := writeFile(path, b); err != nil {
			return err
		}

		for c, st := range render.Stats(b) {
			if st.Clipped > 0 {
				_, _ = yellow.Fprintf(os.Stderr, "warning: %s channel %d: %d samples clipped (peak %.2f)\n",
					path, c, st.Clipped, st.Peak)
			}
		}
		_, _ = green.Printf("wrote %s (%d ch, %.2fs)\n", path, b.NumChannels(), b.Duration())
	}

	log.WithField("elapsed", time.Since(start)).Debug("render complete")
	return nil
}

func printPlan(names []string, rate float64) {
	fmt.Printf("speed: %g\n", rate)
	if len(names) == 0 {
		fmt.Println("stages: (none)")
		return
	}
	fmt.Printf("stages: %s\n", strings.Join(names, " -> "))
}

// outputPath picks the destination for input: out when set, otherwise
// <name>.fx.wav in dir (or next to the input).
func outputPath(input, out, dir string) string {
	if out != "" {
		return out
	}

	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".fx.wav"
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func writeFile(path string, b *buffer.Buffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.Write(f, b); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
