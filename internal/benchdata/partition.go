package benchdata

import (
	"fmt"
	"strings"
)

// Partition splits measurements into key generation and signing groups by
// name prefix, keeping input order. Names matching neither prefix are dropped.
func Partition(benches []Measurement) (Groups, error) {
	var groups Groups
	for i, m := range benches {
		if m.Name == nil {
			return Groups{}, fmt.Errorf("%w: bench %d has no name", ErrMalformedMeasurement, i)
		}
		name := *m.Name
		switch {
		case strings.HasPrefix(name, KeyGenPrefix):
			groups.KeyGen = append(groups.KeyGen, m)
		case strings.HasPrefix(name, SignPrefix):
			groups.Sign = append(groups.Sign, m)
		default:
			continue
		}
		if m.Value == nil {
			return Groups{}, fmt.Errorf("%w: bench %q has no numeric value", ErrMalformedMeasurement, name)
		}
	}
	return groups, nil
}

// Len reports the number of measurements kept across both groups.
func (g Groups) Len() int {
	return len(g.KeyGen) + len(g.Sign)
}
