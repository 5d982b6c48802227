package core

import (
	"testing"
	"time"
)

func TestEstimateRemaining(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		processed int
		total     int
		expected  time.Duration
	}{
		{"Nothing processed", 5 * time.Second, 0, 10, 0},
		{"Half way", 10 * time.Second, 5, 10, 10 * time.Second},
		{"One of four", 3 * time.Second, 1, 4, 9 * time.Second},
		{"Done", 42 * time.Second, 10, 10, 0},
		{"Zero elapsed", 0, 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateRemaining(tt.elapsed, tt.processed, tt.total); got != tt.expected {
				t.Errorf("EstimateRemaining() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{999 * time.Millisecond, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Second, "00:01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{26 * time.Hour, "26:00:00"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatClock(tt.input); got != tt.expected {
				t.Errorf("FormatClock(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProgress_Label(t *testing.T) {
	p := Progress{
		Processed:      3,
		Total:          12,
		BytesProcessed: 1536,
		Elapsed:        75 * time.Second,
		ETA:            225 * time.Second,
	}

	expected := "3/12 1.5 KB Processing Time: 00:01:15 ETA: 00:03:45"
	if got := p.Label(); got != expected {
		t.Errorf("Label() = %q, want %q", got, expected)
	}
}
