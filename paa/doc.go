// Package paa reduces a time series by Piecewise Aggregate Approximation:
// the series is cut into consecutive windows of a fixed frame size and each
// window is replaced by its mean.
//
//	reduced, err := paa.Aggregate(series, 4) // 100 samples -> 25 means
//
// When the frame size does not divide the length, the final window is
// shorter and is averaged over the samples it has. The output length is
// always paa.Frames(n, frameSize) = ceil(n / frameSize).
package paa
