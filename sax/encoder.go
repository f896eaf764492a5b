package sax

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sartorproj/gosax/timeseries"
)

// ErrNaN is returned when a value to encode is NaN.
var ErrNaN = errors.New("sax: NaN has no symbol")

// Encoder maps values to symbols by locating them among the breakpoints.
// Intervals are right-closed: rank i holds (bp[i-1], bp[i]], with the
// outermost intervals open to -Inf and +Inf.
type Encoder struct {
	alphabet    *Alphabet
	breakpoints []float64
}

// NewEncoder returns an encoder for an alphabet of alphabetSize symbols.
func NewEncoder(alphabetSize int) (*Encoder, error) {
	bps, err := Breakpoints(alphabetSize)
	if err != nil {
		return nil, err
	}
	alphabet, err := NewAlphabet(alphabetSize)
	if err != nil {
		return nil, err
	}
	return &Encoder{alphabet: alphabet, breakpoints: bps}, nil
}

// Alphabet returns the encoder's alphabet.
func (e *Encoder) Alphabet() *Alphabet {
	return e.alphabet
}

// Breakpoints returns a copy of the interior interval bounds.
func (e *Encoder) Breakpoints() []float64 {
	out := make([]float64, len(e.breakpoints))
	copy(out, e.breakpoints)
	return out
}

// Symbol returns the symbol of v. Every non-NaN value, including the
// infinities, falls in exactly one interval; a value equal to a breakpoint
// belongs to the interval below it.
func (e *Encoder) Symbol(v float64) Symbol {
	// first breakpoint >= v closes the interval holding v
	return Symbol(sort.SearchFloat64s(e.breakpoints, v))
}

// Encode maps every value of series to its symbol.
func (e *Encoder) Encode(series *timeseries.Series) (*SymbolicSeries, error) {
	symbols := make([]Symbol, series.Len())
	for i, v := range series.Values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: index %d", ErrNaN, i)
		}
		symbols[i] = e.Symbol(v)
	}
	return &SymbolicSeries{
		Alphabet: e.alphabet,
		Symbols:  symbols,
		Name:     series.Name,
	}, nil
}

// Encode maps the values of series, assumed z-normalized, onto an alphabet
// of alphabetSize symbols.
func Encode(series *timeseries.Series, alphabetSize int) (*SymbolicSeries, error) {
	enc, err := NewEncoder(alphabetSize)
	if err != nil {
		return nil, err
	}
	return enc.Encode(series)
}
