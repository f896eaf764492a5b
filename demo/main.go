// Package main runs the SAX pipeline from the command line and prints the raw
// series summary, the symbolic word and the symbol frequency histogram.
//
//	go run ./demo
//	go run ./demo -frame 10 -alphabet 4 -show hist
//	go run ./demo -csv data/eggs.csv -column y -frame 3 -alphabet 3 -json out.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sartorproj/gosax/arma"
	"github.com/sartorproj/gosax/pipeline"
	"github.com/sartorproj/gosax/sax"
	"github.com/sartorproj/gosax/timeseries"
)

const (
	showSeries = "series"
	showHist   = "hist"
	showAll    = "all"

	barWidth       = 40
	diagnosticLags = 10
)

// options holds the parsed command line.
type options struct {
	config   string
	csv      string
	column   string
	frame    string
	alphabet string
	show     string
	json     string
	verbose  bool

	frameSet    bool
	alphabetSet bool
}

// Export is the JSON document written by -json.
type Export struct {
	Series      string          `json:"series"`
	Length      int             `json:"length"`
	Params      pipeline.Params `json:"params"`
	Raw         []float64       `json:"raw"`
	Aggregated  []float64       `json:"aggregated"`
	Normalized  []float64       `json:"normalized"`
	Breakpoints []float64       `json:"breakpoints"`
	Symbols     []string        `json:"symbols"`
	Frequencies []sax.Frequency `json:"frequencies"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.config, "config", "", "YAML configuration file (default: built-in ARMA(1,1) settings)")
	fs.StringVar(&opts.csv, "csv", "", "transform this CSV file instead of the generated series")
	fs.StringVar(&opts.column, "column", "y", "value column of the CSV file")
	fs.StringVar(&opts.frame, "frame", "", "frame size, an integer in [1, n] (default: from config)")
	fs.StringVar(&opts.alphabet, "alphabet", "", "alphabet size, an integer in [1, n] (default: from config)")
	fs.StringVar(&opts.show, "show", showAll, "what to print: series, hist or all")
	fs.StringVar(&opts.json, "json", "", "also write the result as JSON to this path")
	fs.BoolVar(&opts.verbose, "v", false, "log pipeline stages")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	switch opts.show {
	case showSeries, showHist, showAll:
	default:
		return nil, fmt.Errorf("-show must be %s, %s or %s, got %q", showSeries, showHist, showAll, opts.show)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frame":
			opts.frameSet = true
		case "alphabet":
			opts.alphabetSet = true
		}
	})
	return opts, nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if verbose {
		level = zapcore.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

func loadConfig(path string, lookup func(string) (string, bool)) (*pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(opts.verbose, stderr)
	defer logger.Sync()

	cfg, err := loadConfig(opts.config, lookup)
	if err != nil {
		return err
	}
	p, err := pipeline.New(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	var raw *timeseries.Series
	if opts.csv != "" {
		if raw, err = timeseries.LoadCSVColumn(opts.csv, opts.column); err != nil {
			return err
		}
	} else if raw, err = p.RawSeries(); err != nil {
		return err
	}

	frameText, alphabetText := opts.frame, opts.alphabet
	if !opts.frameSet {
		frameText = strconv.Itoa(cfg.FrameSize)
	}
	if !opts.alphabetSet {
		alphabetText = strconv.Itoa(cfg.AlphabetSize)
	}
	params, err := pipeline.ParseParams(frameText, alphabetText, raw.Len())
	if err != nil {
		return err
	}

	res, err := p.Transform(raw, params)
	if err != nil {
		return err
	}
	logger.Info("transformed series",
		zap.String("series", raw.Name),
		zap.Int("length", res.Length),
		zap.Int("symbols", res.Symbolic.Len()),
	)

	if opts.show == showSeries || opts.show == showAll {
		var process *arma.Process
		if opts.csv == "" {
			process = &cfg.Process
		}
		printSummary(stdout, res, process)
	}
	if opts.show == showHist || opts.show == showAll {
		printHistogram(stdout, res.Symbolic.Frequencies())
	}

	if opts.json != "" {
		if err := writeJSON(opts.json, res); err != nil {
			return err
		}
		logger.Info("exported result", zap.String("path", opts.json))
	}
	return nil
}

// printSummary prints the raw series statistics and the SAX word. When the
// series was generated, the lag-1 sample autocorrelation is shown next to
// the value implied by process.
func printSummary(w io.Writer, res *pipeline.Result, process *arma.Process) {
	raw := res.Raw
	fmt.Fprintf(w, "Series %s: %d observations\n", raw.Name, raw.Len())
	fmt.Fprintf(w, "   mean=%.4f std=%.4f min=%.4f max=%.4f median=%.4f\n",
		raw.Mean(), raw.Std(), raw.Min(), raw.Max(), raw.Median())

	if acf := arma.SampleACF(raw.Values, diagnosticLags); len(acf) > 1 {
		line := fmt.Sprintf("   lag-1 autocorrelation: %.4f", acf[1])
		if process != nil {
			if theory := process.ACF(1); len(theory) > 1 {
				line += fmt.Sprintf(" (%s: %.4f)", process, theory[1])
			}
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "   significant lags: %v\n", arma.SignificantLags(acf, arma.ConfidenceBound(raw.Len())))
	}
	if lb := arma.LjungBox(raw.Values, diagnosticLags, 0); lb != nil {
		fmt.Fprintf(w, "   Ljung-Box Q(%d)=%.4f p=%.4f\n", lb.Lags, lb.Statistic, lb.PValue)
	}

	fmt.Fprintf(w, "\nSAX word (frame size %d, alphabet size %d, %d symbols):\n",
		res.Params.FrameSize, res.Params.AlphabetSize, res.Symbolic.Len())
	fmt.Fprintf(w, "   %s\n", res.Symbolic)
}

// printHistogram prints one bar per symbol, scaled to the most frequent one.
func printHistogram(w io.Writer, freqs []sax.Frequency) {
	peak, width := 0, 0
	for _, f := range freqs {
		peak = max(peak, f.Count)
		width = max(width, len(f.Label))
	}

	fmt.Fprintln(w, "\nSymbol frequencies:")
	for _, f := range freqs {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(float64(f.Count) / float64(peak) * barWidth))
		}
		fmt.Fprintf(w, "   %*s | %-*s %d\n", width, f.Label, barWidth, strings.Repeat("#", bar), f.Count)
	}
}

func writeJSON(path string, res *pipeline.Result) error {
	enc, err := sax.NewEncoder(res.Params.AlphabetSize)
	if err != nil {
		return err
	}
	out := Export{
		Series:      res.Raw.Name,
		Length:      res.Length,
		Params:      res.Params,
		Raw:         res.Raw.Values,
		Aggregated:  res.Aggregated.Values,
		Normalized:  res.Normalized.Values,
		Breakpoints: enc.Breakpoints(),
		Symbols:     res.Symbolic.Labels(),
		Frequencies: res.Symbolic.Frequencies(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
