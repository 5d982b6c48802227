//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// fileTimes reads the times from FileInfo (Windows records a real creation time)
func fileTimes(_ string, info os.FileInfo) (created, accessed, modified time.Time, err error) {
	stat := info.Sys().(*syscall.Win32FileAttributeData)
	created = time.Unix(0, stat.CreationTime.Nanoseconds())
	accessed = time.Unix(0, stat.LastAccessTime.Nanoseconds())
	modified = time.Unix(0, stat.LastWriteTime.Nanoseconds())
	return
}
