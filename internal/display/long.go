package display

import (
	"strings"

	"github.com/meain/lsd/internal/meta"
	"github.com/meain/lsd/internal/theme"
)

// longRow is one entry split into its aligned fields. Widths are the
// visible widths, computed once so alignment ignores color escapes.
type longRow struct {
	perms string
	owner string
	group string
	size  string
	date  string
	name  string
}

// renderLong emits one entry per line with aligned permission, owner,
// group, size, date and name columns. Field widths are the per-listing
// maximum, not a global constant.
func (r *Renderer) renderLong(b *strings.Builder, nodes []*Node) {
	rows := make([]longRow, len(nodes))
	var ownerW, groupW, sizeW, dateW int
	for i, n := range nodes {
		rows[i] = r.longRowFor(n)
		if w := visibleWidth(rows[i].owner); w > ownerW {
			ownerW = w
		}
		if w := visibleWidth(rows[i].group); w > groupW {
			groupW = w
		}
		if w := visibleWidth(rows[i].size); w > sizeW {
			sizeW = w
		}
		if w := visibleWidth(rows[i].date); w > dateW {
			dateW = w
		}
	}

	for _, row := range rows {
		b.WriteString(row.perms)
		b.WriteString(" ")
		b.WriteString(pad(row.owner, ownerW))
		b.WriteString(" ")
		b.WriteString(pad(row.group, groupW))
		b.WriteString(" ")
		b.WriteString(padLeft(row.size, sizeW))
		b.WriteString(" ")
		b.WriteString(pad(row.date, dateW))
		b.WriteString(" ")
		b.WriteString(row.name)
		b.WriteString("\n")
	}
}

// longRowFor resolves every field for one entry. A failed entry renders
// placeholder fields instead of aborting the listing.
func (r *Renderer) longRowFor(n *Node) longRow {
	m := n.Meta
	if m.Err != nil {
		return longRow{
			perms: "??????????",
			owner: "-",
			group: "-",
			size:  "-",
			date:  "-",
			name:  r.nameCell(n, true),
		}
	}

	return longRow{
		perms: r.permString(m),
		owner: r.Colors.Colorize(m.Owner, theme.ElemUser),
		group: r.Colors.Colorize(m.Group, theme.ElemGroup),
		size:  r.sizeField(m),
		date:  r.Colors.Colorize(m.DateString(r.Now), theme.ForAge(m.AgeBucketAt(r.Now))),
		name:  r.nameCell(n, true),
	}
}

// permString renders the type character and the nine permission slots,
// each slot colored by its permission class.
func (r *Renderer) permString(m *meta.Meta) string {
	var b strings.Builder
	b.WriteString(r.Colors.Colorize(m.Kind.String(), r.Colors.ForMeta(m)))
	for _, ch := range []byte(m.PermissionString()) {
		b.WriteString(r.Colors.Colorize(string(ch), theme.ForPermissionChar(ch)))
	}
	return b.String()
}

// sizeField renders the size in the color of its bucket. Directories
// show their aggregated size only when that was requested.
func (r *Renderer) sizeField(m *meta.Meta) string {
	elem := theme.ForSize(m.SizeBucketFor(r.SizeThresholds))
	return r.Colors.Colorize(m.SizeString(r.TotalSize), elem)
}
