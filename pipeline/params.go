package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/sartorproj/gosax/paa"
	"github.com/sartorproj/gosax/sax"
	"github.com/sartorproj/gosax/timeseries"
)

// Params are the two sizes a SAX transform is run with.
type Params struct {
	FrameSize    int `json:"frame_size" yaml:"frame_size"`
	AlphabetSize int `json:"alphabet_size" yaml:"alphabet_size"`
}

// Validate checks both sizes against a series of n samples: each must lie
// in [1, n]. The frame size is checked first.
func (p Params) Validate(n int) error {
	if err := timeseries.CheckRange(paa.FrameSizeName, p.FrameSize, 1, n); err != nil {
		return err
	}
	return timeseries.CheckRange(sax.AlphabetSizeName, p.AlphabetSize, 1, n)
}

// ParseParams parses the sizes as typed by a user. Blank input, text that is
// not a number, numbers with a fractional part and integers outside [1, n]
// are each rejected with a *timeseries.ParameterError naming the parameter.
func ParseParams(frameText, alphabetText string, n int) (Params, error) {
	frame, err := parseSize(paa.FrameSizeName, frameText, n)
	if err != nil {
		return Params{}, err
	}
	alphabet, err := parseSize(sax.AlphabetSizeName, alphabetText, n)
	if err != nil {
		return Params{}, err
	}
	return Params{FrameSize: frame, AlphabetSize: alphabet}, nil
}

// ParamsFromFloat validates numeric sizes that may carry a fractional part.
func ParamsFromFloat(frame, alphabet float64, n int) (Params, error) {
	f, err := checkSize(paa.FrameSizeName, frame, strconv.FormatFloat(frame, 'g', -1, 64), n)
	if err != nil {
		return Params{}, err
	}
	a, err := checkSize(sax.AlphabetSizeName, alphabet, strconv.FormatFloat(alphabet, 'g', -1, 64), n)
	if err != nil {
		return Params{}, err
	}
	return Params{FrameSize: f, AlphabetSize: a}, nil
}

func parseSize(name, text string, n int) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &timeseries.ParameterError{Name: name, Reason: timeseries.ReasonMissing, Min: 1, Max: n}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &timeseries.ParameterError{Name: name, Value: text, Reason: timeseries.ReasonNotNumeric, Min: 1, Max: n}
	}
	return checkSize(name, v, text, n)
}

func checkSize(name string, v float64, raw string, n int) (int, error) {
	perr := &timeseries.ParameterError{Name: name, Value: raw, Min: 1, Max: n}
	switch {
	case math.IsNaN(v):
		perr.Reason = timeseries.ReasonNotNumeric
	case v != math.Trunc(v):
		perr.Reason = timeseries.ReasonNotIntegral
	case v < 1 || v > float64(n):
		perr.Reason = timeseries.ReasonOutOfRange
	default:
		return int(v), nil
	}
	return 0, perr
}
