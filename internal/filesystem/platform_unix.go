//go:build openbsd || dragonfly || solaris

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes reads times from stat(2); ctime stands in for creation
func fileTimes(path string, _ os.FileInfo) (created, accessed, modified time.Time, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	return time.Unix(st.Ctim.Unix()), time.Unix(st.Atim.Unix()), time.Unix(st.Mtim.Unix()), nil
}
