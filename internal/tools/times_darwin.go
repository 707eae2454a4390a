//go:build darwin

package tools

import (
	"io/fs"
	"syscall"
	"time"
)

func fileTimes(info fs.FileInfo) (created, accessed time.Time, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Unix()), time.Unix(st.Atimespec.Unix()), true
}
