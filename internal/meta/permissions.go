package meta

import "os"

// PermissionString renders the nine rwx slots for the entry, with the
// setuid/setgid/sticky flags patched into the execute positions the way
// ls does. The leading type character is rendered separately from Kind.
func (m *Meta) PermissionString() string {
	b := []byte(m.Mode.Perm().String())[1:] // drop the mode's own type slot

	if m.Mode&os.ModeSetuid != 0 {
		if b[2] == 'x' {
			b[2] = 's'
		} else {
			b[2] = 'S'
		}
	}
	if m.Mode&os.ModeSetgid != 0 {
		if b[5] == 'x' {
			b[5] = 's'
		} else {
			b[5] = 'S'
		}
	}
	if m.Mode&os.ModeSticky != 0 {
		if b[8] == 'x' {
			b[8] = 't'
		} else {
			b[8] = 'T'
		}
	}

	return string(b)
}
