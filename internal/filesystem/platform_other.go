//go:build !linux && !windows && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris

package filesystem

import (
	"os"
	"time"
)

// fileTimes falls back to the portable modification time for every field
func fileTimes(_ string, info os.FileInfo) (created, accessed, modified time.Time, err error) {
	mod := info.ModTime()
	return mod, mod, mod, nil
}
