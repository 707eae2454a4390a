//go:build windows

package tools

import (
	"io/fs"
	"syscall"
	"time"
)

func fileTimes(info fs.FileInfo) (created, accessed time.Time, ok bool) {
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return time.Unix(0, d.CreationTime.Nanoseconds()), time.Unix(0, d.LastAccessTime.Nanoseconds()), true
}
