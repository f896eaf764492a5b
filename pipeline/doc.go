// Package pipeline composes the SAX stages over a seeded ARMA series or a
// caller-supplied one.
//
// A transform always runs in this order:
//
//	raw series -> PAA (frame size f) -> z-normalize -> SAX encode (alphabet size a)
//
// Normalization applies to the aggregated means, not to the raw series.
// Both sizes must be integers in [1, n] where n is the raw series length;
// they are checked before any stage runs.
//
// # Basic Usage
//
//	res, err := pipeline.ProduceSymbolicSeries(4, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Symbolic) // 25 binary labels
//
// # Configuration
//
// Config is loaded from YAML; absent keys keep their defaults:
//
//	length: 100
//	seed: 12345
//	process:
//	  ar: [0.0]
//	  ma: [0.5]
//	  sigma: 1
//	frame_size: 4
//	alphabet_size: 5
//
// GOSAX_LENGTH and GOSAX_SEED override the file through Config.ApplyEnv.
package pipeline
