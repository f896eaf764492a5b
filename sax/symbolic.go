package sax

import "strings"

// SymbolicSeries is the SAX word of a series: one symbol per aggregated value.
type SymbolicSeries struct {
	Alphabet *Alphabet
	Symbols  []Symbol
	Name     string
}

// Len returns the number of symbols.
func (s *SymbolicSeries) Len() int {
	return len(s.Symbols)
}

// Labels returns the label of each symbol in order.
func (s *SymbolicSeries) Labels() []string {
	out := make([]string, len(s.Symbols))
	for i, sym := range s.Symbols {
		out[i] = s.Alphabet.Label(sym)
	}
	return out
}

// String joins the labels with spaces; labels have different widths so
// they cannot be concatenated unambiguously.
func (s *SymbolicSeries) String() string {
	return strings.Join(s.Labels(), " ")
}

// Frequency is the number of occurrences of one symbol.
type Frequency struct {
	Symbol Symbol `json:"symbol"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// Frequencies counts every symbol of the alphabet, in rank order.
// Symbols that never occur are reported with a zero count.
func (s *SymbolicSeries) Frequencies() []Frequency {
	counts := make([]int, s.Alphabet.Size())
	for _, sym := range s.Symbols {
		counts[sym]++
	}

	out := make([]Frequency, len(counts))
	for i, c := range counts {
		out[i] = Frequency{
			Symbol: Symbol(i),
			Label:  s.Alphabet.Label(Symbol(i)),
			Count:  c,
		}
	}
	return out
}
