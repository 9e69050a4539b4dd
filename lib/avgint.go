// Package lib provide small helpers shared by the collection
// engines.
package lib

// AverageInt64 tracks running mean and extremes over int64 samples.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	init   bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	if av.init == false || sample < av.minval {
		av.minval = sample
		av.init = true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Min value among samples.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max value among samples.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Samples added so far.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Sum of all samples.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean value across samples, 0 when empty.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}
