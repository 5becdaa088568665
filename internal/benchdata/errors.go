package benchdata

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrPatternNotFound is returned when no window.BENCHMARK_DATA assignment is present.
	ErrPatternNotFound = errors.New("benchmark data assignment not found")
	// ErrDecode is returned when the assigned object is not valid JSON.
	ErrDecode = errors.New("invalid benchmark JSON")
	// ErrEmptyData is returned when the assigned object has no keys.
	ErrEmptyData = errors.New("benchmark data is empty")
	// ErrUnexpected covers any other failure while loading the input.
	ErrUnexpected = errors.New("unexpected load failure")
	// ErrMalformedData is returned when entries or a suite have the wrong shape.
	ErrMalformedData = errors.New("malformed benchmark data")
	// ErrMalformedMeasurement is returned when a measurement lacks its name or value.
	ErrMalformedMeasurement = errors.New("malformed measurement")
)

// LoadError describes a failed attempt to load a benchmark history file.
type LoadError struct {
	Path  string
	Kind  error
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("load %s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("load %s: %v: %v", e.Path, e.Kind, e.Cause)
}

func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Diagnostic renders err as the one-line message shown to the user.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	var le *LoadError
	if errors.As(err, &le) {
		switch {
		case errors.Is(le.Kind, ErrFileNotFound):
			return fmt.Sprintf("Error: File not found: %s", le.Path)
		case errors.Is(le.Kind, ErrPatternNotFound):
			return fmt.Sprintf("Error: Could not find JavaScript object in %s", le.Path)
		case errors.Is(le.Kind, ErrDecode):
			return fmt.Sprintf("Error decoding JSON: %v", le.Cause)
		case errors.Is(le.Kind, ErrEmptyData):
			return fmt.Sprintf("Error: No benchmark data found in %s", le.Path)
		default:
			return fmt.Sprintf("An unexpected error occurred: %v", le.Cause)
		}
	}

	if errors.Is(err, ErrMalformedData) || errors.Is(err, ErrMalformedMeasurement) {
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
