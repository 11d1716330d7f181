// Package sorter orders and filters walked entries.
//
// Transform is a pure function over the walked records: it never touches
// the filesystem, so a given input sequence and option set always produce
// the same output sequence. Sorting is stable and every comparison ties
// break on ascending name, which makes repeated runs byte-identical.
package sorter

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/meain/lsd/internal/meta"
)

// Key selects the primary sort attribute.
type Key int

const (
	ByName Key = iota
	BySize
	ByTime
	ByExtension
)

// DirGrouping controls where directories sit relative to files.
type DirGrouping int

const (
	DirsNone DirGrouping = iota
	DirsFirst
	DirsLast
)

// Options configures one sort+filter pass.
type Options struct {
	Key         Key
	Reverse     bool
	DirGrouping DirGrouping

	// ShowHidden includes dotfile entries, which are dropped by default.
	ShowHidden bool

	// IgnoreGlobs drops entries whose name matches any pattern
	// (filepath.Match syntax).
	IgnoreGlobs []string
}

// Transform filters and orders the sequence, recursing into directory
// content so nested listings follow the same rules. The input slice is
// not modified; a new sequence is returned.
func Transform(metas []*meta.Meta, opts Options) []*meta.Meta {
	out := make([]*meta.Meta, 0, len(metas))
	for _, m := range metas {
		if excluded(m, opts) {
			continue
		}
		if len(m.Content) > 0 {
			m.Content = Transform(m.Content, opts)
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], opts)
	})

	return out
}

// Sort orders a sequence without filtering and without recursing into
// content. The CLI uses it for the root paths themselves: an explicitly
// named dotfile is never filtered away.
func Sort(metas []*meta.Meta, opts Options) []*meta.Meta {
	out := make([]*meta.Meta, len(metas))
	copy(out, metas)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], opts)
	})
	return out
}

// excluded reports whether the entry is dropped by the filter set.
func excluded(m *meta.Meta, opts Options) bool {
	if !opts.ShowHidden && m.IsHidden() {
		return true
	}
	for _, pattern := range opts.IgnoreGlobs {
		// Invalid patterns are rejected up front by the CLI layer; an
		// error here means no match.
		if ok, _ := filepath.Match(pattern, m.Name); ok {
			return true
		}
	}
	return false
}

// less is the full ordering: directory grouping first, then the primary
// key (flipped by Reverse), then name ascending as the unconditional tie
// break.
func less(a, b *meta.Meta, opts Options) bool {
	if g := compareGrouping(a, b, opts.DirGrouping); g != 0 {
		return g < 0
	}

	c := compareKey(a, b, opts.Key)
	if opts.Reverse {
		c = -c
	}
	if c != 0 {
		return c < 0
	}

	return compareName(a, b) < 0
}

// compareGrouping orders directories before or after files when grouping
// is requested. Symlinks to directories group with directories.
func compareGrouping(a, b *meta.Meta, g DirGrouping) int {
	if g == DirsNone {
		return 0
	}
	ad, bd := isDirLike(a), isDirLike(b)
	if ad == bd {
		return 0
	}
	first := ad
	if g == DirsLast {
		first = bd
	}
	if first {
		return -1
	}
	return 1
}

func isDirLike(m *meta.Meta) bool {
	if m.Kind == meta.KindDir {
		return true
	}
	return m.Kind == meta.KindSymlink && m.Link != nil && m.Link.Meta != nil &&
		m.Link.Meta.Kind == meta.KindDir
}

// compareKey compares the primary attribute in its natural order:
// names and extensions ascend, sizes descend (largest first), times
// descend (newest first).
func compareKey(a, b *meta.Meta, key Key) int {
	switch key {
	case BySize:
		switch {
		case a.Size > b.Size:
			return -1
		case a.Size < b.Size:
			return 1
		}
		return 0
	case ByTime:
		switch {
		case a.Modified.After(b.Modified):
			return -1
		case a.Modified.Before(b.Modified):
			return 1
		}
		return 0
	case ByExtension:
		return strings.Compare(a.Extension(), b.Extension())
	default:
		return compareName(a, b)
	}
}

// compareName is a locale-independent name comparison: case-insensitive
// byte-wise first, exact byte-wise as the final discriminator so equal
// folded names still order deterministically.
func compareName(a, b *meta.Meta) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
