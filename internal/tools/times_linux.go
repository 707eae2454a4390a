//go:build linux

package tools

import (
	"io/fs"
	"syscall"
	"time"
)

// fileTimes returns the change time (reported as creation, as most Linux
// file systems expose no birth time through stat) and the access time.
func fileTimes(info fs.FileInfo) (created, accessed time.Time, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return time.Unix(st.Ctim.Unix()), time.Unix(st.Atim.Unix()), true
}
