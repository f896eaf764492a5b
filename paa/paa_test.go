package paa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosax/timeseries"
)

func TestFrames(t *testing.T) {
	tests := []struct {
		n, f, want int
	}{
		{10, 3, 4},
		{100, 4, 25},
		{100, 3, 34},
		{100, 100, 1},
		{7, 1, 7},
		{0, 3, 0},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Frames(tt.n, tt.f), "Frames(%d, %d)", tt.n, tt.f)
	}
}

func TestAggregateKnownWindows(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	reduced, err := Aggregate(series, 3)
	require.NoError(t, err)

	// windows [1,2,3] [4,5,6] [7,8,9] [10]
	assert.InDeltaSlice(t, []float64{2, 5, 8, 10}, reduced.Values, 1e-12)
	require.Len(t, reduced.Timestamps, 4)
	assert.Equal(t, series.Timestamps[9], reduced.Timestamps[3])
	assert.Equal(t, "_paa", reduced.Name)
}

func TestAggregateLength(t *testing.T) {
	values := make([]float64, 37)
	for i := range values {
		values[i] = float64(i * i)
	}

	for f := 1; f <= len(values); f++ {
		out, err := AggregateValues(values, f)
		require.NoError(t, err)
		assert.Len(t, out, Frames(len(values), f), "frame size %d", f)
	}
}

func TestAggregateEdgeFrameSizes(t *testing.T) {
	values := []float64{4, 8, 15, 16, 23, 42}

	identity, err := AggregateValues(values, 1)
	require.NoError(t, err)
	assert.Equal(t, values, identity)

	whole, err := AggregateValues(values, len(values))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{18}, whole, 1e-12)
}

func TestAggregateDoesNotModifyInput(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	_, err := AggregateValues(values, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, values)
}

func TestAggregateRejectsFrameSize(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	for _, f := range []int{0, -1, 11} {
		reduced, err := Aggregate(series, f)
		require.ErrorIs(t, err, timeseries.ErrInvalidParameter, "frame size %d", f)
		assert.Nil(t, reduced)

		var perr *timeseries.ParameterError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, FrameSizeName, perr.Name)
		assert.Equal(t, 10, perr.Max)
	}
}

func TestAggregateRejectsEmptySeries(t *testing.T) {
	_, err := AggregateValues(nil, 1)
	require.ErrorIs(t, err, timeseries.ErrInvalidParameter)
}

func TestAggregateWithoutTimestamps(t *testing.T) {
	series := &timeseries.Series{Values: []float64{1, 3, 5, 7}}

	reduced, err := Aggregate(series, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6}, reduced.Values)
	assert.Nil(t, reduced.Timestamps)
}
