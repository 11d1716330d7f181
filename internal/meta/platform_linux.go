//go:build linux

package meta

import (
	"os"
	"syscall"
	"time"
)

// fillPlatform copies the linux stat fields (ownership, inode, device,
// access time) into the record. Creation time is not exposed by the
// portable stat on linux, so it stays tagged unsupported.
func fillPlatform(m *Meta, info os.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}

	m.UID = st.Uid
	m.GID = st.Gid
	m.Inode = st.Ino
	m.Device = st.Dev
	m.Accessed = OptionalTime{
		Time:      time.Unix(st.Atim.Sec, st.Atim.Nsec),
		Supported: true,
	}
}
