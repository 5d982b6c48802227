package core

import (
	"fmt"
	"time"

	"github.com/IvanShishkin/dirlist/pkg/bytesize"
)

// EstimateRemaining projects the time left assuming a constant per-file rate
func EstimateRemaining(elapsed time.Duration, processed, total int) time.Duration {
	if processed <= 0 || total <= processed {
		return 0
	}
	projected := time.Duration(float64(elapsed) * float64(total) / float64(processed))
	if remaining := projected - elapsed; remaining > 0 {
		return remaining
	}
	return 0
}

// FormatClock renders d as hh:mm:ss, truncated to whole seconds.
// Hours are not wrapped at 24.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// Label renders the per-row progress label:
// "n/N <bytes> Processing Time: hh:mm:ss ETA: hh:mm:ss"
func (p Progress) Label() string {
	return fmt.Sprintf("%d/%d %s Processing Time: %s ETA: %s",
		p.Processed, p.Total,
		bytesize.Format(p.BytesProcessed),
		FormatClock(p.Elapsed),
		FormatClock(p.ETA))
}
