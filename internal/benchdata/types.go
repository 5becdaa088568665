// internal/benchdata/types.go
package benchdata

import (
	"bytes"
	"encoding/json"
)

const (
	// SuiteName is the benchmark suite key read from the history's entries.
	SuiteName = "Rust Benchmark"
	// KeyGenPrefix marks distributed key generation measurements.
	KeyGenPrefix = "dkg-"
	// SignPrefix marks distributed signing measurements.
	SignPrefix = "dsg-"
)

// Dataset is the decoded object assigned to window.BENCHMARK_DATA.
type Dataset struct {
	raw    []byte
	fields map[string]json.RawMessage
}

// CommitEntry is one historical benchmark run attached to a commit.
type CommitEntry struct {
	Commit  *Commit       `json:"commit"`
	Benches []Measurement `json:"benches"`
}

// Commit carries the commit metadata shown on the page. Other commit keys
// (id, message, author) are ignored.
type Commit struct {
	Timestamp json.RawMessage `json:"timestamp"`
	URL       json.RawMessage `json:"url"`
}

// Measurement is a single named timing. Value is expressed in nanoseconds.
// Keys other than name and value (range, unit) are ignored.
type Measurement struct {
	Name  *string  `json:"name"`
	Value *float64 `json:"value"`
}

// Groups holds the measurements of the latest run split by name prefix.
type Groups struct {
	KeyGen []Measurement
	Sign   []Measurement
}

const (
	timestampFallback = "Timestamp not found"
	urlFallback       = "URL not found"
)

// Timestamp returns the commit timestamp or a placeholder when it is missing.
func (e CommitEntry) Timestamp() string {
	if e.Commit == nil {
		return timestampFallback
	}
	return commitText(e.Commit.Timestamp, timestampFallback)
}

// URL returns the commit URL or a placeholder when it is missing.
func (e CommitEntry) URL() string {
	if e.Commit == nil {
		return urlFallback
	}
	return commitText(e.Commit.URL, urlFallback)
}

// commitText renders a commit value as text. Strings are unquoted, other
// JSON values keep their literal form, and absent or null values fall back.
func commitText(raw json.RawMessage, fallback string) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fallback
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// BenchName returns the measurement name, or "" when the key was absent.
func (m Measurement) BenchName() string {
	if m.Name == nil {
		return ""
	}
	return *m.Name
}

// Nanoseconds returns the raw measurement value.
func (m Measurement) Nanoseconds() float64 {
	if m.Value == nil {
		return 0
	}
	return *m.Value
}

// Millis converts the nanosecond value to milliseconds without rounding.
func (m Measurement) Millis() float64 {
	return m.Nanoseconds() / 1_000_000
}
