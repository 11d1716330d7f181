//go:build darwin

package meta

import (
	"os"
	"syscall"
	"time"
)

// fillPlatform copies the darwin stat fields into the record. Darwin
// exposes a birth time, so Created is supported here.
func fillPlatform(m *Meta, info os.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}

	m.UID = st.Uid
	m.GID = st.Gid
	m.Inode = st.Ino
	m.Device = uint64(st.Dev)
	m.Accessed = OptionalTime{
		Time:      time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec),
		Supported: true,
	}
	m.Created = OptionalTime{
		Time:      time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec),
		Supported: true,
	}
}
