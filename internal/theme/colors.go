// Package theme maps entry attributes to colors and icon glyphs.
//
// A theme is built once per run and read-only afterwards, so several
// configurations can coexist in one process (tests rely on this). Colors
// are 256-palette indexes rendered through fatih/color; a disabled theme
// returns its input unchanged.
package theme

import (
	"github.com/fatih/color"

	"github.com/meain/lsd/internal/meta"
)

// Elem is the closed set of semantic style categories. Every rendered
// fragment is colored through exactly one Elem.
type Elem int

const (
	ElemFile Elem = iota
	ElemFileExec
	ElemFileSetuid
	ElemDir
	ElemSymlink
	ElemBrokenSymlink
	ElemPipe
	ElemSocket
	ElemBlockDevice
	ElemCharDevice
	ElemSpecial

	ElemRead
	ElemWrite
	ElemExec
	ElemExecSticky
	ElemNoAccess

	ElemUser
	ElemGroup

	ElemHourOld
	ElemDayOld
	ElemOlder

	ElemNonFile
	ElemSizeSmall
	ElemSizeMedium
	ElemSizeLarge

	ElemTreeEdge
)

// noColor marks an element rendered in the terminal's default color.
const noColor = -1

// defaultPalette is the stock 256-color assignment. Values follow the
// xterm palette (https://jonasjacek.github.io/colors/).
func defaultPalette() map[Elem]int {
	return map[Elem]int{
		ElemFile:          noColor,
		ElemFileExec:      8,   // Grey
		ElemFileSetuid:    8,   // Grey
		ElemDir:           26,  // DodgerBlue1
		ElemSymlink:       37,  // LightSeaGreen
		ElemBrokenSymlink: 124, // Red3
		ElemPipe:          44,  // DarkTurquoise
		ElemSocket:        44,  // DarkTurquoise
		ElemBlockDevice:   44,  // DarkTurquoise
		ElemCharDevice:    172, // Orange3
		ElemSpecial:       44,  // DarkTurquoise

		ElemRead:       noColor,
		ElemWrite:      noColor,
		ElemExec:       noColor,
		ElemExecSticky: noColor,
		ElemNoAccess:   8, // Grey

		ElemUser:  noColor,
		ElemGroup: noColor,

		ElemHourOld: noColor,
		ElemDayOld:  noColor,
		ElemOlder:   245, // Grey54

		ElemNonFile:    250, // Grey74
		ElemSizeSmall:  245, // Grey54
		ElemSizeMedium: noColor,
		ElemSizeLarge:  noColor,

		ElemTreeEdge: noColor,
	}
}

// Colors renders strings in the color assigned to their element. The
// zero-value-like disabled form passes strings through untouched.
type Colors struct {
	enabled bool
	palette map[Elem]int
}

// NewColors builds a Colors with the stock palette. When enabled is
// false every Colorize call is the identity.
func NewColors(enabled bool) *Colors {
	return &Colors{enabled: enabled, palette: defaultPalette()}
}

// NewColorsWithOverrides builds a Colors with palette entries replaced by
// the given element name to color index map. Unknown names are ignored;
// the caller warns about them.
func NewColorsWithOverrides(enabled bool, overrides map[string]int) *Colors {
	c := NewColors(enabled)
	for name, code := range overrides {
		if elem, ok := elemNames[name]; ok {
			c.palette[elem] = code
		}
	}
	return c
}

// elemNames maps the theme-file spelling of each element to its Elem.
var elemNames = map[string]Elem{
	"file":           ElemFile,
	"file-exec":      ElemFileExec,
	"file-setuid":    ElemFileSetuid,
	"dir":            ElemDir,
	"symlink":        ElemSymlink,
	"broken-symlink": ElemBrokenSymlink,
	"pipe":           ElemPipe,
	"socket":         ElemSocket,
	"block-device":   ElemBlockDevice,
	"char-device":    ElemCharDevice,
	"special":        ElemSpecial,
	"read":           ElemRead,
	"write":          ElemWrite,
	"exec":           ElemExec,
	"exec-sticky":    ElemExecSticky,
	"no-access":      ElemNoAccess,
	"user":           ElemUser,
	"group":          ElemGroup,
	"hour-old":       ElemHourOld,
	"day-old":        ElemDayOld,
	"older":          ElemOlder,
	"non-file":       ElemNonFile,
	"size-small":     ElemSizeSmall,
	"size-medium":    ElemSizeMedium,
	"size-large":     ElemSizeLarge,
	"tree-edge":      ElemTreeEdge,
}

// Colorize wraps s in the ANSI sequence for the element's color. Setuid
// entries additionally get the red warning background.
func (c *Colors) Colorize(s string, elem Elem) string {
	if !c.enabled || s == "" {
		return s
	}

	code, ok := c.palette[elem]
	setuid := elem == ElemFileSetuid

	var attrs []color.Attribute
	if ok && code != noColor {
		// 38;5;N selects a foreground from the 256-color palette.
		attrs = append(attrs, 38, 5, color.Attribute(code))
	}
	if setuid {
		// 48;5;124 puts the setuid warning on a red background.
		attrs = append(attrs, 48, 5, 124)
	}
	if len(attrs) == 0 {
		return s
	}

	painter := color.New(attrs...)
	painter.EnableColor() // the run-level decision was already made
	return painter.Sprint(s)
}

// ForMeta resolves the file-kind element for an entry. Broken symlinks
// take precedence over every other rule so they are never restyled by
// extension mappings.
func (c *Colors) ForMeta(m *meta.Meta) Elem {
	if m.Err != nil {
		return ElemNoAccess
	}
	switch m.Kind {
	case meta.KindDir:
		return ElemDir
	case meta.KindSymlink:
		if m.Link == nil || m.Link.Broken {
			return ElemBrokenSymlink
		}
		return ElemSymlink
	case meta.KindPipe:
		return ElemPipe
	case meta.KindSocket:
		return ElemSocket
	case meta.KindBlockDevice:
		return ElemBlockDevice
	case meta.KindCharDevice:
		return ElemCharDevice
	case meta.KindSpecial, meta.KindUnknown:
		return ElemSpecial
	default:
		if m.HasSetuid() {
			return ElemFileSetuid
		}
		if m.IsExecutable() {
			return ElemFileExec
		}
		return ElemFile
	}
}

// ForAge resolves the recency element for a modification time bucket.
func ForAge(b meta.AgeBucket) Elem {
	switch b {
	case meta.AgeHourOld:
		return ElemHourOld
	case meta.AgeDayOld:
		return ElemDayOld
	default:
		return ElemOlder
	}
}

// ForSize resolves the size element for a size bucket.
func ForSize(b meta.SizeBucket) Elem {
	switch b {
	case meta.BucketSmall:
		return ElemSizeSmall
	case meta.BucketMedium:
		return ElemSizeMedium
	case meta.BucketLarge:
		return ElemSizeLarge
	default:
		return ElemNonFile
	}
}

// ForPermissionChar resolves the permission-class element for one slot of
// the rwx string.
func ForPermissionChar(ch byte) Elem {
	switch ch {
	case 'r':
		return ElemRead
	case 'w':
		return ElemWrite
	case 'x', 's':
		return ElemExec
	case 't', 'T', 'S':
		return ElemExecSticky
	default:
		return ElemNoAccess
	}
}
