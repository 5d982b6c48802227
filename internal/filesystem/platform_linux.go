//go:build linux

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes uses statx so the birth time is available where the filesystem records it.
// Without one, the inode change time stands in for creation.
func fileTimes(path string, _ os.FileInfo) (created, accessed, modified time.Time, err error) {
	var stx unix.Statx_t
	mask := unix.STATX_BTIME | unix.STATX_ATIME | unix.STATX_MTIME | unix.STATX_CTIME
	if err = unix.Statx(unix.AT_FDCWD, path, 0, mask, &stx); err != nil {
		return
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		created = statxTime(stx.Btime)
	} else {
		created = statxTime(stx.Ctime)
	}
	accessed = statxTime(stx.Atime)
	modified = statxTime(stx.Mtime)
	return
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
