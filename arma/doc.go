// Package arma samples reproducible synthetic series from ARMA(p,q) processes.
//
// An ARMA(p,q) process combines:
//   - AR(p): p autoregressive terms on past values
//   - MA(q): q moving average terms on past innovations
//
// The default process is ARMA(1,1) with phi = 0.0 and theta = 0.5, which
// makes it an MA(1) process in practice.
//
// # Basic Usage
//
//	gen, err := arma.NewGenerator(arma.Default(), arma.DefaultSeed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	series, err := gen.Generate(arma.DefaultLength)
//
// Generate restarts the innovation stream from the seed on each call, so the
// same generator and length always return the same values.
//
// # Autocorrelation
//
// Compare the sample autocorrelation of a generated path with the process:
//
//	sample := arma.SampleACF(series.Values, 5)
//	theory := arma.Default().ACF(5) // [1, 0.4, 0, 0, 0, 0]
//
// LjungBox tests whether a path is distinguishable from white noise:
//
//	if lb := arma.LjungBox(series.Values, 10, 0); lb != nil && lb.Correlated(0.05) {
//	    // autocorrelated
//	}
package arma
