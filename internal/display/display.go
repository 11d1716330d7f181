// Package display arranges styled entries into terminal output.
//
// Each display mode is a pure transformation from ordered nodes to text:
// mode selection happens in one place (Render) and every mode can be
// exercised independently in tests. Rendering never fails a run; a
// malformed entry is substituted by its error marker and the remaining
// entries are emitted as usual.
package display

import (
	"strings"
	"time"

	"github.com/meain/lsd/internal/meta"
	"github.com/meain/lsd/internal/theme"
)

// Mode is the closed set of layout strategies.
type Mode int

const (
	ModeGrid Mode = iota
	ModeOneline
	ModeLong
	ModeTree
)

// Node wraps a walked entry with its resolved presentation state. A node
// owns its children exclusively; symlink targets are referenced by path
// string, never by shared node identity, so the structure is always a
// tree.
type Node struct {
	Meta     *meta.Meta
	Elem     theme.Elem
	Icon     string
	Depth    int
	Children []*Node
}

// Renderer holds the run-scoped, read-only rendering state.
type Renderer struct {
	Colors *theme.Colors
	Icons  *theme.Icons

	// Width is the terminal width in cells; zero or negative means
	// unknown, which degrades grid mode to one entry per line.
	Width int

	// TotalSize renders directory sizes as the recursive sum of their
	// listed descendants instead of 0.
	TotalSize bool

	// SizeThresholds drives size bucket coloring.
	SizeThresholds meta.SizeThresholds

	// Now is the reference instant for date rendering and age buckets.
	// It is fixed once per run so a listing renders identically across
	// its own duration.
	Now time.Time
}

// Build converts walked roots into display nodes, resolving color and
// icon for every entry once.
func (r *Renderer) Build(metas []*meta.Meta) []*Node {
	return r.buildNodes(metas, 0)
}

func (r *Renderer) buildNodes(metas []*meta.Meta, depth int) []*Node {
	nodes := make([]*Node, 0, len(metas))
	for _, m := range metas {
		nodes = append(nodes, &Node{
			Meta:     m,
			Elem:     r.Colors.ForMeta(m),
			Icon:     r.Icons.For(m),
			Depth:    depth,
			Children: r.buildNodes(m.Content, depth+1),
		})
	}
	return nodes
}

// Render lays out the roots in the requested mode.
func (r *Renderer) Render(roots []*Node, mode Mode) string {
	var b strings.Builder
	switch mode {
	case ModeTree:
		for _, root := range roots {
			r.renderTree(&b, root, "")
		}
	case ModeLong:
		r.renderBlocks(&b, roots, 0, r.renderLong)
	case ModeOneline:
		r.renderBlocks(&b, roots, 0, r.renderOneline)
	default:
		r.renderBlocks(&b, roots, 0, r.renderGrid)
	}
	return b.String()
}

// renderBlocks emits one listing block per level: first the plain
// entries, then one block per listed directory, recursively. At the top
// level directory roots are deferred to their own blocks, matching ls.
func (r *Renderer) renderBlocks(b *strings.Builder, nodes []*Node, depth int, emit func(*strings.Builder, []*Node)) {
	var inline []*Node
	for _, n := range nodes {
		if depth == 0 && n.Meta.Kind == meta.KindDir {
			continue
		}
		inline = append(inline, n)
	}
	if len(inline) > 0 {
		emit(b, inline)
	}

	withHeader := showBlockHeaders(nodes, depth)
	for _, n := range nodes {
		if len(n.Children) == 0 && n.Meta.Err == nil {
			continue
		}
		if n.Meta.Kind != meta.KindDir && len(n.Children) == 0 {
			continue
		}
		if withHeader {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(n.Meta.Path)
			b.WriteString(":\n")
		}
		if n.Meta.Err != nil {
			b.WriteString(r.errorMarker(n.Meta))
			b.WriteString("\n")
			continue
		}
		r.renderBlocks(b, n.Children, depth+1, emit)
	}
}

// showBlockHeaders reports whether directory blocks at this level are
// introduced by a "path:" header. A single directory root listed alone
// stays headerless, like ls.
func showBlockHeaders(nodes []*Node, depth int) bool {
	if depth > 0 {
		return true
	}
	dirs := 0
	for _, n := range nodes {
		if n.Meta.Kind == meta.KindDir {
			dirs++
		}
	}
	return dirs > 1 || dirs < len(nodes)
}

// errorMarker is the inline substitute for an unreadable listing.
func (r *Renderer) errorMarker(m *meta.Meta) string {
	return r.Colors.Colorize("["+m.ErrorLabel()+"]", theme.ElemNoAccess)
}

// nameCell renders the icon, the styled name, and for symlinks the
// arrow to the styled target. Entries that failed to stat carry their
// marker directly in the cell.
func (r *Renderer) nameCell(n *Node, withTarget bool) string {
	var b strings.Builder
	b.WriteString(n.Icon)
	b.WriteString(r.Colors.Colorize(n.Meta.Name, n.Elem))

	if n.Meta.Err != nil && n.Meta.Kind != meta.KindDir {
		b.WriteString(" ")
		b.WriteString(r.errorMarker(n.Meta))
		return b.String()
	}

	if withTarget && n.Meta.Link != nil {
		b.WriteString(" ")
		b.WriteString(r.Colors.Colorize("⇒", theme.ElemSymlink))
		b.WriteString(" ")
		if n.Meta.Link.Broken {
			label := n.Meta.Link.Path
			if label == "" {
				label = "broken"
			}
			b.WriteString(r.Colors.Colorize(label, theme.ElemBrokenSymlink))
		} else {
			b.WriteString(r.Colors.Colorize(n.Meta.Link.Path, theme.ElemSymlink))
		}
	}
	return b.String()
}

// renderOneline emits one name cell per line.
func (r *Renderer) renderOneline(b *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		b.WriteString(r.nameCell(n, true))
		b.WriteString("\n")
	}
}
