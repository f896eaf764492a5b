// Package sax implements Symbolic Aggregate approXimation: it turns a
// z-normalized series into a word over a small alphabet.
//
// # Breakpoints
//
// For an alphabet of a symbols, the a-1 breakpoints are the standard normal
// quantiles at 1/a, 2/a, ..., (a-1)/a. Together with -Inf and +Inf they cut
// the real line into a equiprobable intervals:
//
//	bps, _ := sax.Breakpoints(4) // [-0.674, 0, 0.674]
//
// # Alphabet
//
// Symbols are interval ranks. Their labels are the binary form of the rank
// ("0", "1", "10", "11", ...). The alphabet always has exactly a members,
// whether or not all of them occur in a given series.
//
// # Encoding
//
//	enc, err := sax.NewEncoder(5)
//	word, err := enc.Encode(normalized)
//	fmt.Println(word)               // e.g. "10 11 1 0 100 ..."
//	for _, f := range word.Frequencies() {
//	    fmt.Println(f.Label, f.Count)
//	}
//
// Intervals are right-closed, so a value equal to a breakpoint takes the
// lower symbol. Encoding is total: -Inf maps to the first symbol and +Inf to
// the last. NaN is rejected with ErrNaN.
package sax
