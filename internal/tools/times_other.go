//go:build !linux && !darwin && !windows

package tools

import (
	"io/fs"
	"time"
)

func fileTimes(fs.FileInfo) (created, accessed time.Time, ok bool) {
	return time.Time{}, time.Time{}, false
}
