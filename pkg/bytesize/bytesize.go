// Package bytesize converts byte counts to and from human-readable strings
// using binary (1024) unit steps.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Units in ascending order. The index is the power of 1024.
var Units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Format renders b with the largest unit whose scaled value is at least 1,
// rounded to two decimal places ("1023.0 B", "1.0 KB", "1.23 MB").
func Format(b uint64) string {
	if b < 1 {
		return "0 B"
	}

	unit := 0
	for v := b; v >= 1024 && unit < len(Units)-1; v /= 1024 {
		unit++
	}

	scaled := float64(b) / math.Pow(1024, float64(unit))
	rounded := math.Round(scaled*100) / 100

	return formatFloat(rounded) + " " + Units[unit]
}

// formatFloat prints the shortest representation that keeps at least one decimal
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Parse is the lossy inverse of Format. It accepts "<number> [unit]"; the unit
// defaults to B. The result is floor(number * 1024^unit), saturating at the
// largest uint64.
func Parse(s string) (uint64, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty size string")
	}
	if len(tokens) > 2 {
		return 0, fmt.Errorf("invalid size %q: too many tokens", s)
	}

	n, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("invalid size %q: must be a finite non-negative number", s)
	}

	unit := 0
	if len(tokens) == 2 {
		unit = unitIndex(tokens[1])
		if unit < 0 {
			return 0, fmt.Errorf("invalid size %q: unknown unit %q", s, tokens[1])
		}
	}

	v := math.Floor(n * math.Pow(1024, float64(unit)))
	if v >= math.MaxUint64 {
		return math.MaxUint64, nil
	}
	return uint64(v), nil
}

func unitIndex(unit string) int {
	for i, u := range Units {
		if u == unit {
			return i
		}
	}
	return -1
}
