package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosax/timeseries"
)

func TestParseParams(t *testing.T) {
	p, err := ParseParams("4", " 5 ", 100)
	require.NoError(t, err)
	assert.Equal(t, Params{FrameSize: 4, AlphabetSize: 5}, p)

	p, err = ParseParams("100", "1", 100)
	require.NoError(t, err)
	assert.Equal(t, Params{FrameSize: 100, AlphabetSize: 1}, p)

	p, err = ParseParams("4.0", "5", 100)
	require.NoError(t, err)
	assert.Equal(t, 4, p.FrameSize, "integral floats are accepted")
}

func TestParseParamsRejects(t *testing.T) {
	tests := []struct {
		name      string
		frame     string
		alphabet  string
		wantParam string
		reason    timeseries.Reason
	}{
		{"frame missing", "", "5", "frame size", timeseries.ReasonMissing},
		{"frame blank", "  ", "5", "frame size", timeseries.ReasonMissing},
		{"frame not numeric", "four", "5", "frame size", timeseries.ReasonNotNumeric},
		{"frame nan", "NaN", "5", "frame size", timeseries.ReasonNotNumeric},
		{"frame zero", "0", "5", "frame size", timeseries.ReasonOutOfRange},
		{"frame above length", "101", "5", "frame size", timeseries.ReasonOutOfRange},
		{"frame negative", "-4", "5", "frame size", timeseries.ReasonOutOfRange},
		{"frame fractional", "2.5", "5", "frame size", timeseries.ReasonNotIntegral},
		{"frame inf", "Inf", "5", "frame size", timeseries.ReasonOutOfRange},
		{"alphabet missing", "4", "", "alphabet size", timeseries.ReasonMissing},
		{"alphabet not numeric", "4", "x", "alphabet size", timeseries.ReasonNotNumeric},
		{"alphabet zero", "4", "0", "alphabet size", timeseries.ReasonOutOfRange},
		{"alphabet above length", "4", "101", "alphabet size", timeseries.ReasonOutOfRange},
		{"alphabet fractional", "4", "5.5", "alphabet size", timeseries.ReasonNotIntegral},
		{"both bad reports frame", "0", "0", "frame size", timeseries.ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseParams(tt.frame, tt.alphabet, 100)
			require.ErrorIs(t, err, timeseries.ErrInvalidParameter)
			assert.Zero(t, p)

			var perr *timeseries.ParameterError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantParam, perr.Name)
			assert.Equal(t, tt.reason, perr.Reason)
			assert.Contains(t, err.Error(), tt.wantParam)
		})
	}
}

func TestParamsFromFloat(t *testing.T) {
	p, err := ParamsFromFloat(4, 5, 100)
	require.NoError(t, err)
	assert.Equal(t, Params{FrameSize: 4, AlphabetSize: 5}, p)

	tests := []struct {
		name            string
		frame, alphabet float64
		reason          timeseries.Reason
	}{
		{"fractional frame", 2.5, 5, timeseries.ReasonNotIntegral},
		{"fractional alphabet", 4, 0.5, timeseries.ReasonNotIntegral},
		{"nan", math.NaN(), 5, timeseries.ReasonNotNumeric},
		{"zero alphabet", 4, 0, timeseries.ReasonOutOfRange},
		{"inf frame", math.Inf(1), 5, timeseries.ReasonOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParamsFromFloat(tt.frame, tt.alphabet, 100)
			var perr *timeseries.ParameterError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.reason, perr.Reason)
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, Params{FrameSize: 1, AlphabetSize: 10}.Validate(10))

	err := Params{FrameSize: 11, AlphabetSize: 5}.Validate(10)
	require.ErrorIs(t, err, timeseries.ErrInvalidParameter)
	assert.Equal(t, "frame size has to be an integer between 1 and 10, got 11 (out of range)", err.Error())

	err = Params{FrameSize: 2, AlphabetSize: 0}.Validate(10)
	require.ErrorIs(t, err, timeseries.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "alphabet size")
}
