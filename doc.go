// Package gosax turns time series into symbolic words with SAX
// (Symbolic Aggregate approXimation).
//
// A series is reduced with Piecewise Aggregate Approximation, the aggregated
// means are z-normalized, and each normalized value is replaced by the symbol
// of the standard normal interval it falls in. Symbols are labeled with the
// binary form of their rank ("0", "1", "10", ...).
//
// # Packages
//
//   - timeseries: the Series type, normalization, CSV loading and errors
//   - arma: seeded ARMA(p,q) sample paths and autocorrelation diagnostics
//   - paa: Piecewise Aggregate Approximation
//   - sax: breakpoints, alphabets and the symbolic encoder
//   - pipeline: the composed transform, its parameters and YAML config
//
// # Quick Start
//
// Run the default pipeline, an ARMA(1,1) series of 100 samples with
// phi = 0.0 and theta = 0.5 seeded with 12345:
//
//	res, err := pipeline.ProduceSymbolicSeries(4, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Symbolic)
//	for _, f := range res.Symbolic.Frequencies() {
//	    fmt.Println(f.Label, f.Count)
//	}
//
// Transform your own data:
//
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//	p, err := pipeline.New(nil)
//	params, err := pipeline.ParseParams("3", "4", series.Len())
//	res, err := p.Transform(series, params)
//
// # Parameters
//
// Frame size and alphabet size must both be integers in [1, n], n being the
// raw series length. Invalid sizes fail with an error matching
// timeseries.ErrInvalidParameter before any stage runs. A series whose
// aggregated means have no spread (for instance a frame size equal to n)
// fails with timeseries.ErrDegenerateInput.
package gosax
