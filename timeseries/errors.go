package timeseries

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors shared by every stage of the SAX pipeline.
// Typed errors below match them through errors.Is.
var (
	// ErrInvalidParameter is returned when a size parameter is missing,
	// non-numeric, non-integral or out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateInput is returned when a series has no spread to normalize.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Reason tells why a parameter was rejected.
type Reason int

const (
	// ReasonOutOfRange means the value is an integer outside [Min, Max].
	ReasonOutOfRange Reason = iota
	// ReasonMissing means no value was supplied.
	ReasonMissing
	// ReasonNotNumeric means the value could not be parsed as a number.
	ReasonNotNumeric
	// ReasonNotIntegral means the value is a number with a fractional part.
	ReasonNotIntegral
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonNotNumeric:
		return "not numeric"
	case ReasonNotIntegral:
		return "not an integer"
	default:
		return "out of range"
	}
}

// ParameterError describes a rejected size parameter.
type ParameterError struct {
	Name   string // human-readable parameter name, e.g. "frame size"
	Value  string // value as supplied
	Reason Reason
	Min    int
	Max    int // Max < Min means no upper bound
}

func (e *ParameterError) Error() string {
	switch e.Reason {
	case ReasonMissing:
		return fmt.Sprintf("please enter %s", e.Name)
	case ReasonNotNumeric:
		return fmt.Sprintf("%s must be a number, got %q", e.Name, e.Value)
	}
	if e.Max < e.Min {
		return fmt.Sprintf("%s has to be an integer of at least %d, got %s (%s)",
			e.Name, e.Min, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s has to be an integer between %d and %d, got %s (%s)",
		e.Name, e.Min, e.Max, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameter.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// CheckRange returns a *ParameterError when v lies outside [lo, hi].
func CheckRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &ParameterError{
			Name:   name,
			Value:  fmt.Sprint(v),
			Reason: ReasonOutOfRange,
			Min:    lo,
			Max:    hi,
		}
	}
	return nil
}

// CheckMin returns a *ParameterError when v is below lo.
func CheckMin(name string, v, lo int) error {
	if v < lo {
		return &ParameterError{Name: name, Value: fmt.Sprint(v), Reason: ReasonOutOfRange, Min: lo, Max: lo - 1}
	}
	return nil
}

// DegenerateInputError is returned when an operation needs a series with
// nonzero spread and did not get one.
type DegenerateInputError struct {
	Op  string
	Len int
	Std float64
}

func (e *DegenerateInputError) Error() string {
	if e.Len < 2 {
		return fmt.Sprintf("%s: need at least 2 values, got %d", e.Op, e.Len)
	}
	if math.IsNaN(e.Std) || math.IsInf(e.Std, 0) {
		return fmt.Sprintf("%s: series of %d values has non-finite standard deviation %v", e.Op, e.Len, e.Std)
	}
	return fmt.Sprintf("%s: series of %d values has zero standard deviation", e.Op, e.Len)
}

// Is reports whether target is ErrDegenerateInput.
func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}
