// Package timeseries provides the Series type shared by the SAX pipeline,
// z-score normalization, CSV loading and the error taxonomy used by every stage.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Series built from bare values get hourly timestamps starting at Epoch, so
// two series with equal values compare equal.
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.IDColumn, opts.IDFilter = "unique_id", "Australia"
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
// # Normalization
//
// Normalize returns a z-scored copy using the sample standard deviation
// (n-1 denominator). Constant series and series shorter than two values
// cannot be normalized:
//
//	normalized, err := series.Normalize()
//	if errors.Is(err, timeseries.ErrDegenerateInput) {
//	    // no spread to scale by
//	}
//
// # Errors
//
// ErrInvalidParameter and ErrDegenerateInput are the two failure classes of
// the pipeline. *ParameterError and *DegenerateInputError carry the details
// and match their sentinel through errors.Is.
package timeseries
