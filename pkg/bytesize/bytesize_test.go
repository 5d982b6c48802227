package bytesize

import (
	"math"
	"math/rand"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected string
	}{
		{"Zero", 0, "0 B"},
		{"One byte", 1, "1.0 B"},
		{"Below boundary", 1023, "1023.0 B"},
		{"Kilobyte boundary", 1024, "1.0 KB"},
		{"One and a half KB", 1536, "1.5 KB"},
		{"Two decimals", 1263, "1.23 KB"},
		{"Rounds up to next whole", 1024*1024 - 1, "1024.0 KB"},
		{"Megabyte", 1024 * 1024, "1.0 MB"},
		{"Gigabyte", 1 << 30, "1.0 GB"},
		{"Terabyte", 1 << 40, "1.0 TB"},
		{"Exabyte", 1 << 60, "1.0 EB"},
		{"Max uint64", math.MaxUint64, "16.0 EB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format(%d) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
	}{
		{"Bytes without unit", "100", 100},
		{"Bytes with unit", "1023.0 B", 1023},
		{"Kilobytes", "1.0 KB", 1024},
		{"Fractional KB", "1.5 KB", 1536},
		{"Lossy KB", "1.23 KB", 1259},
		{"Megabytes", "2 MB", 2 * 1024 * 1024},
		{"Zero", "0 B", 0},
		{"Extra whitespace", "  1.0   GB ", 1 << 30},
		{"Saturates", "1 YB", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{"", "   ", "abc", "1.0 XB", "-1 KB", "1 KB extra", "NaN", "Inf B"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", input)
			}
		})
	}
}

func TestRoundTrip_BoundedError(t *testing.T) {
	samples := []uint64{0, 1, 2, 999, 1023, 1024, 1025, 4095, 1 << 20, 1<<20 - 1, 123456789, 1 << 50, math.MaxUint64}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		samples = append(samples, rng.Uint64()>>uint(rng.Intn(64)))
	}

	for _, b := range samples {
		parsed, err := Parse(Format(b))
		if err != nil {
			t.Fatalf("Parse(Format(%d)) error = %v", b, err)
		}

		step := unitStep(b)
		var diff uint64
		if parsed > b {
			diff = parsed - b
		} else {
			diff = b - parsed
		}
		if diff > step {
			t.Errorf("Parse(Format(%d)) = %d, off by %d (unit step %d)", b, parsed, diff, step)
		}
	}
}

// unitStep returns 1024^unit for the unit Format picks for b
func unitStep(b uint64) uint64 {
	step := uint64(1)
	for v := b; v >= 1024; v /= 1024 {
		step *= 1024
	}
	return step
}
