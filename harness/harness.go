// Package harness drives a benchmark pass repeatedly and reports its timing
// distribution. Dataset construction happens before Measure is called, so
// build cost never lands in a sample.
package harness

import (
	"time"
)

// Options control how many passes Measure runs.
type Options struct {
	Warmup  int // passes run and discarded before sampling starts
	Samples int // timed passes
}

func DefaultOptions() Options {
	return Options{
		Warmup:  10,
		Samples: 100,
	}
}

// Measure runs pass Warmup times untimed, then Samples times with a
// wall-clock sample per pass, all against the same dataset. State
// accumulates across every one of those passes; nothing is reset in
// between. One Measure call covers exactly one scenario. Zero or negative
// option fields fall back to DefaultOptions, so a zero Options value still
// gets the warmup discard.
func Measure(name string, opts Options, pass func()) Report {
	def := DefaultOptions()
	if opts.Samples <= 0 {
		opts.Samples = def.Samples
	}
	if opts.Warmup <= 0 {
		opts.Warmup = def.Warmup
	}

	for i := 0; i < opts.Warmup; i++ {
		pass()
	}

	samples := make([]time.Duration, 0, opts.Samples)
	for i := 0; i < opts.Samples; i++ {
		start := time.Now()
		pass()
		samples = append(samples, time.Since(start))
	}

	return summarize(name, samples)
}
