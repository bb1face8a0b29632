package harness

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Report is the timing distribution for one measured scenario.
type Report struct {
	Name    string
	Samples []time.Duration // per-pass samples, in run order

	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
	Q1     time.Duration
	Q3     time.Duration

	// Outliers counts samples outside the Tukey fences (1.5 IQR past the
	// quartiles). They stay in the summary statistics, the count just flags
	// how noisy the run was.
	Outliers int
}

func summarize(name string, samples []time.Duration) Report {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	r := Report{
		Name:    name,
		Samples: samples,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Median:  quantile(sorted, 0.5),
		Q1:      quantile(sorted, 0.25),
		Q3:      quantile(sorted, 0.75),
	}

	var sum float64
	for _, d := range samples {
		sum += float64(d)
	}
	mean := sum / float64(len(samples))
	r.Mean = time.Duration(mean)

	if len(samples) > 1 {
		var sq float64
		for _, d := range samples {
			diff := float64(d) - mean
			sq += diff * diff
		}
		r.StdDev = time.Duration(math.Sqrt(sq / float64(len(samples)-1)))
	}

	iqr := r.Q3 - r.Q1
	lo := r.Q1 - 3*iqr/2
	hi := r.Q3 + 3*iqr/2
	for _, d := range sorted {
		if d < lo || d > hi {
			r.Outliers++
		}
	}

	return r
}

// quantile interpolates linearly between the two nearest samples of a
// sorted slice.
func quantile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[hi]-sorted[lo]))
}

func (r Report) String() string {
	return fmt.Sprintf("%s: n=%d min=%v q1=%v median=%v mean=%v q3=%v max=%v stddev=%v outliers=%d",
		r.Name, len(r.Samples), r.Min, r.Q1, r.Median, r.Mean, r.Q3, r.Max, r.StdDev, r.Outliers)
}
