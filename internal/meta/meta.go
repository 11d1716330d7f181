// Package meta builds portable entry records from raw filesystem stats.
//
// The package normalizes platform differences (timestamps, ownership,
// permission bits) into a single Meta type that the rest of the pipeline
// consumes. Fields a platform cannot produce are tagged unsupported rather
// than omitted, so downstream style resolution always has a stable shape
// to match against.
package meta

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Kind identifies the filesystem object type. It is set once when the
// record is built and never changes afterwards.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindPipe
	KindSocket
	KindBlockDevice
	KindCharDevice
	KindSpecial
	KindUnknown
)

// String returns the single-character type indicator used in the
// permission column (ls convention).
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "-"
	case KindDir:
		return "d"
	case KindSymlink:
		return "l"
	case KindPipe:
		return "p"
	case KindSocket:
		return "s"
	case KindBlockDevice:
		return "b"
	case KindCharDevice:
		return "c"
	default:
		return "?"
	}
}

// OptionalTime is a timestamp a platform may not support. Supported is
// false when the field could not be produced; Time is then the zero value.
type OptionalTime struct {
	Time      time.Time
	Supported bool
}

// LinkTarget describes where a symlink points. Broken is true when the
// target does not resolve to an existing object; Meta is nil in that case.
type LinkTarget struct {
	Path   string
	Meta   *Meta
	Broken bool
}

// Meta is one normalized filesystem entry. Records are created during
// traversal, enriched here, and treated as read-only once they enter the
// sort stage.
type Meta struct {
	Name        string
	Path        string
	Kind        Kind
	Mode        os.FileMode
	Size        uint64
	Modified    time.Time
	Accessed    OptionalTime
	Created     OptionalTime
	Owner       string
	Group       string
	UID         uint32
	GID         uint32
	Inode       uint64
	Device      uint64
	Depth       int
	Link        *LinkTarget
	Err         error
	Content     []*Meta
}

// FromPath stats path and builds a Meta for it. The entry itself is always
// lstat'ed; when the entry is a symlink its target is resolved separately
// so broken links are reported explicitly instead of failing the record.
func FromPath(path string) (*Meta, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, classifyError(path, err)
	}
	return fromInfo(path, info), nil
}

// fromInfo builds a Meta from an already obtained lstat result.
func fromInfo(path string, info os.FileInfo) *Meta {
	m := &Meta{
		Name:     info.Name(),
		Path:     path,
		Kind:     kindFromMode(info.Mode()),
		Mode:     info.Mode(),
		Modified: info.ModTime(),
	}
	if m.Kind != KindDir {
		m.Size = uint64(info.Size())
	}

	fillPlatform(m, info)
	m.Owner, m.Group = resolveOwner(m.UID, m.GID)

	if m.Kind == KindSymlink {
		m.Link = resolveLink(path)
	}
	return m
}

// resolveLink reads a symlink and stats its target. A target that cannot
// be read or stat'ed yields an explicit broken marker, never a nil link.
func resolveLink(path string) *LinkTarget {
	target, err := os.Readlink(path)
	if err != nil {
		return &LinkTarget{Broken: true}
	}

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(path), target)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return &LinkTarget{Path: target, Broken: true}
	}
	return &LinkTarget{Path: target, Meta: fromInfo(resolved, info)}
}

// kindFromMode maps a file mode to the portable kind enum.
func kindFromMode(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode&os.ModeNamedPipe != 0:
		return KindPipe
	case mode&os.ModeSocket != 0:
		return KindSocket
	case mode&os.ModeDevice != 0:
		if mode&os.ModeCharDevice != 0 {
			return KindCharDevice
		}
		return KindBlockDevice
	case mode&os.ModeIrregular != 0:
		return KindSpecial
	default:
		return KindUnknown
	}
}

// IsExecutable reports whether any execute bit is set on the entry.
func (m *Meta) IsExecutable() bool {
	return m.Mode.Perm()&0o111 != 0
}

// HasSetuid reports whether the setuid or setgid bit is set.
func (m *Meta) HasSetuid() bool {
	return m.Mode&(os.ModeSetuid|os.ModeSetgid) != 0
}

// IsHidden reports whether the entry follows the dotfile hiding convention.
func (m *Meta) IsHidden() bool {
	return strings.HasPrefix(m.Name, ".")
}

// Extension returns the lowercased extension without the leading dot, or
// "" when the name has none.
func (m *Meta) Extension() string {
	ext := filepath.Ext(m.Name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// Labeler is implemented by typed errors that carry their own inline
// marker text. The traversal layer attaches its failures through this.
type Labeler interface {
	error
	Label() string
}

// ErrorLabel returns the inline marker text for a failed entry, or "" when
// the entry carried no error.
func (m *Meta) ErrorLabel() string {
	if m.Err == nil {
		return ""
	}
	var le Labeler
	if errors.As(m.Err, &le) {
		return le.Label()
	}
	return "unreadable"
}

// TotalSize returns the entry size plus the recursive sum of all listed
// descendants. Directories themselves contribute 0.
func (m *Meta) TotalSize() uint64 {
	total := m.Size
	for _, child := range m.Content {
		total += child.TotalSize()
	}
	return total
}
