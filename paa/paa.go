// Package paa implements Piecewise Aggregate Approximation.
package paa

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gosax/timeseries"
)

// FrameSizeName names the frame size in parameter errors.
const FrameSizeName = "frame size"

// Frames returns the number of windows of width frameSize that cover n
// samples, i.e. ceil(n / frameSize).
func Frames(n, frameSize int) int {
	if n <= 0 || frameSize <= 0 {
		return 0
	}
	return (n + frameSize - 1) / frameSize
}

// AggregateValues averages consecutive windows of frameSize values.
// Sample i belongs to window i / frameSize, so window k covers
// [k*frameSize, min((k+1)*frameSize, n)) and only the last window can be short.
func AggregateValues(values []float64, frameSize int) ([]float64, error) {
	n := len(values)
	if err := timeseries.CheckMin("series length", n, 1); err != nil {
		return nil, err
	}
	if err := timeseries.CheckRange(FrameSizeName, frameSize, 1, n); err != nil {
		return nil, err
	}

	out := make([]float64, Frames(n, frameSize))
	for k := range out {
		window := values[k*frameSize : min((k+1)*frameSize, n)]
		out[k] = floats.Sum(window) / float64(len(window))
	}
	return out, nil
}

// Aggregate reduces series to one mean per window of frameSize samples.
// Each output timestamp is the timestamp of the window's first sample.
func Aggregate(series *timeseries.Series, frameSize int) (*timeseries.Series, error) {
	values, err := AggregateValues(series.Values, frameSize)
	if err != nil {
		return nil, err
	}

	var timestamps []time.Time
	if len(series.Timestamps) == series.Len() {
		timestamps = make([]time.Time, len(values))
		for k := range timestamps {
			timestamps[k] = series.Timestamps[k*frameSize]
		}
	}

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       series.Name + "_paa",
	}, nil
}
