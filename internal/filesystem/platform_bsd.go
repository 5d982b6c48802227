//go:build darwin || freebsd || netbsd

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes reads times from stat(2). Birth time falls back to the
// status-change time when the filesystem does not record one.
func fileTimes(path string, _ os.FileInfo) (created, accessed, modified time.Time, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}

	created = time.Unix(st.Ctim.Unix())
	if st.Btim.Sec > 0 {
		created = time.Unix(st.Btim.Unix())
	}
	return created, time.Unix(st.Atim.Unix()), time.Unix(st.Mtim.Unix()), nil
}
