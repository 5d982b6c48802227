// Package progress renders single-line terminal progress output
package progress

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultWidth is the bar width used when none is configured
const DefaultWidth = 40

// Bar draws a carriage-return progress bar. Each call overwrites the previous line.
type Bar struct {
	Out   io.Writer
	Width int
}

// NewBar creates a bar writing to out
func NewBar(out io.Writer, width int) *Bar {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Bar{Out: out, Width: width}
}

// Report draws "\t<label> [***---] <pct>%\r". Once current reaches total the
// line is closed and "Complete" is printed.
func (b *Bar) Report(current, total int, label string) {
	pct := Percent(current, total)
	done := b.filled(pct)

	fmt.Fprintf(b.Out, "\t%s [%s%s] %s%%\r",
		label,
		strings.Repeat("*", done),
		strings.Repeat("-", b.width()-done),
		strconv.FormatFloat(pct, 'f', -1, 64)+decimalSuffix(pct))

	if current == total {
		fmt.Fprint(b.Out, " \nComplete\n")
	}
}

// Loading draws the pass-one counter
func (b *Bar) Loading(n int) {
	fmt.Fprintf(b.Out, " Loading: %d\r", n)
}

// LoadingDone closes the pass-one counter line
func (b *Bar) LoadingDone() {
	fmt.Fprint(b.Out, " \nLoading Complete\n")
}

// Percent returns current/total as a percentage rounded to one decimal
// (halves to even), capped at 100
func Percent(current, total int) float64 {
	if total <= 0 {
		return 100
	}
	pct := math.RoundToEven(float64(current)/float64(total)*1000) / 10
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

func (b *Bar) width() int {
	if b.Width <= 0 {
		return DefaultWidth
	}
	return b.Width
}

// filled is the number of cells drawn for pct, half cells round to even
func (b *Bar) filled(pct float64) int {
	w := b.width()
	done := int(math.RoundToEven(pct / (100 / float64(w))))
	if done > w {
		done = w
	}
	return done
}

func decimalSuffix(f float64) string {
	if f == math.Trunc(f) {
		return ".0"
	}
	return ""
}
