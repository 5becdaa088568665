// internal/benchdata/loader.go
package benchdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// assignmentPattern captures the object literal assigned to window.BENCHMARK_DATA.
// The lazy capture stops at the closing brace that is followed only by an
// optional semicolon and the end of the (trimmed) content.
var assignmentPattern = regexp.MustCompile(`(?s)^\s*window\.BENCHMARK_DATA\s*=\s*(\{.*?\});?$`)

// Load reads a benchmark history script from path and decodes its data object.
func Load(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Kind: ErrFileNotFound, Cause: err}
		}
		return nil, &LoadError{Path: path, Kind: ErrUnexpected, Cause: err}
	}
	if !utf8.Valid(content) {
		return nil, &LoadError{Path: path, Kind: ErrUnexpected, Cause: errors.New("input is not valid UTF-8")}
	}

	object, ok := Extract(string(content))
	if !ok {
		return nil, &LoadError{Path: path, Kind: ErrPatternNotFound}
	}

	ds, err := Decode([]byte(object))
	if err != nil {
		if errors.Is(err, ErrEmptyData) {
			return nil, &LoadError{Path: path, Kind: ErrEmptyData}
		}
		return nil, &LoadError{Path: path, Kind: ErrDecode, Cause: err}
	}
	return ds, nil
}

// Extract returns the object literal text of a window.BENCHMARK_DATA assignment.
func Extract(content string) (string, bool) {
	match := assignmentPattern.FindStringSubmatch(strings.TrimSpace(content))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// Decode parses an object literal into a Dataset. Syntax errors are returned
// as reported by encoding/json; an object without keys yields ErrEmptyData.
func Decode(object []byte) (*Dataset, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(object, &fields); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrEmptyData
	}
	raw := make([]byte, len(object))
	copy(raw, object)
	return &Dataset{raw: raw, fields: fields}, nil
}

// Dump returns the dataset as two-space indented JSON, keeping the key
// order of the input document.
func (d *Dataset) Dump() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indent benchmark data: %w", err)
	}
	return buf.Bytes(), nil
}

// Suites lists the suite names present under entries, sorted.
func (d *Dataset) Suites() []string {
	entries, err := d.entries()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Latest returns the most recent run of the Rust benchmark suite, or nil
// when the suite is missing or has no runs.
func (d *Dataset) Latest() (*CommitEntry, error) {
	entries, err := d.entries()
	if err != nil {
		return nil, err
	}
	raw, ok := entries[SuiteName]
	if !ok {
		return nil, nil
	}

	// Earlier runs are never inspected, only split off.
	var runs []json.RawMessage
	if err := json.Unmarshal(raw, &runs); err != nil {
		return nil, fmt.Errorf("%w: suite %q: %v", ErrMalformedData, SuiteName, err)
	}
	if len(runs) == 0 {
		return nil, nil
	}

	var latest CommitEntry
	if err := json.Unmarshal(runs[len(runs)-1], &latest); err != nil {
		return nil, fmt.Errorf("%w: suite %q: last run: %v", ErrMalformedData, SuiteName, err)
	}
	return &latest, nil
}

func (d *Dataset) entries() (map[string]json.RawMessage, error) {
	raw, ok := d.fields["entries"]
	if !ok {
		return nil, nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: entries: %v", ErrMalformedData, err)
	}
	return entries, nil
}
