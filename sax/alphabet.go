package sax

import (
	"strconv"

	"github.com/sartorproj/gosax/timeseries"
)

// Symbol is the rank of a breakpoint interval, 0 for the lowest.
type Symbol int

// Alphabet is a fixed set of symbols, one per breakpoint interval.
// Labels are the binary form of the rank: "0", "1", "10", "11", "100", ...
type Alphabet struct {
	labels []string
	index  map[string]Symbol
}

// NewAlphabet returns an alphabet of size symbols.
func NewAlphabet(size int) (*Alphabet, error) {
	if err := timeseries.CheckMin(AlphabetSizeName, size, 1); err != nil {
		return nil, err
	}

	a := &Alphabet{
		labels: make([]string, size),
		index:  make(map[string]Symbol, size),
	}
	for i := range a.labels {
		label := strconv.FormatInt(int64(i), 2)
		a.labels[i] = label
		a.index[label] = Symbol(i)
	}
	return a, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.labels)
}

// Contains reports whether s is a symbol of the alphabet.
func (a *Alphabet) Contains(s Symbol) bool {
	return s >= 0 && int(s) < len(a.labels)
}

// Label returns the label of s, or "" when s is not in the alphabet.
func (a *Alphabet) Label(s Symbol) string {
	if !a.Contains(s) {
		return ""
	}
	return a.labels[s]
}

// Lookup returns the symbol with the given label.
func (a *Alphabet) Lookup(label string) (Symbol, bool) {
	s, ok := a.index[label]
	return s, ok
}

// Labels returns all labels in rank order.
func (a *Alphabet) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}
