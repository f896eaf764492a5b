package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sartorproj/gosax/arma"
	"github.com/sartorproj/gosax/paa"
	"github.com/sartorproj/gosax/sax"
	"github.com/sartorproj/gosax/timeseries"
)

// ErrNoSeries is returned by Transform for a nil series. It matches
// timeseries.ErrInvalidParameter.
var ErrNoSeries = fmt.Errorf("pipeline: no series: %w", timeseries.ErrInvalidParameter)

// Result holds every stage of one transform.
type Result struct {
	Raw        *timeseries.Series  // input series, for display
	Aggregated *timeseries.Series  // PAA means
	Normalized *timeseries.Series  // z-scored PAA means
	Symbolic   *sax.SymbolicSeries // SAX word
	Length     int                 // raw series length, the bound for both sizes
	Params     Params
}

// Pipeline runs SAX transforms. It keeps only its configuration, which is
// never modified after New, so one Pipeline may serve concurrent callers.
type Pipeline struct {
	cfg    Config
	gen    *arma.Generator
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a pipeline from cfg. A nil cfg means DefaultConfig().
func New(cfg *Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	own := cfg.clone()
	gen, err := arma.NewGenerator(own.Process, own.Seed)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:    own,
		gen:    gen,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Length returns the length of the generated series.
func (p *Pipeline) Length() int {
	return p.cfg.Length
}

// Config returns a copy of the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg.clone()
}

// RawSeries generates the source series without transforming it.
func (p *Pipeline) RawSeries() (*timeseries.Series, error) {
	return p.gen.Generate(p.cfg.Length)
}

// Run generates the source series and transforms it with params.
// Params are checked against the configured length before anything is
// generated.
func (p *Pipeline) Run(params Params) (*Result, error) {
	if err := params.Validate(p.cfg.Length); err != nil {
		return nil, err
	}
	raw, err := p.RawSeries()
	if err != nil {
		return nil, err
	}
	return p.transform(raw, params)
}

// Transform runs the SAX stages over a caller-supplied series.
func (p *Pipeline) Transform(raw *timeseries.Series, params Params) (*Result, error) {
	if raw == nil {
		return nil, ErrNoSeries
	}
	if err := params.Validate(raw.Len()); err != nil {
		return nil, err
	}
	return p.transform(raw, params)
}

// transform aggregates first and normalizes the aggregated series, not the
// raw one.
func (p *Pipeline) transform(raw *timeseries.Series, params Params) (*Result, error) {
	aggregated, err := paa.Aggregate(raw, params.FrameSize)
	if err != nil {
		return nil, err
	}
	normalized, err := aggregated.Normalize()
	if err != nil {
		return nil, err
	}
	symbolic, err := sax.Encode(normalized, params.AlphabetSize)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("sax transform",
		zap.String("series", raw.Name),
		zap.Int("length", raw.Len()),
		zap.Int("frame_size", params.FrameSize),
		zap.Int("frames", aggregated.Len()),
		zap.Int("alphabet_size", params.AlphabetSize),
	)

	return &Result{
		Raw:        raw,
		Aggregated: aggregated,
		Normalized: normalized,
		Symbolic:   symbolic,
		Length:     raw.Len(),
		Params:     params,
	}, nil
}

// ProduceSymbolicSeries runs the default pipeline: the seeded ARMA(1,1)
// series of 100 samples transformed with the given sizes.
func ProduceSymbolicSeries(frameSize, alphabetSize int) (*Result, error) {
	p, err := New(nil)
	if err != nil {
		return nil, err
	}
	return p.Run(Params{FrameSize: frameSize, AlphabetSize: alphabetSize})
}
