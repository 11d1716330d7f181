package display

import (
	"strings"

	"github.com/meain/lsd/internal/meta"
	"github.com/meain/lsd/internal/theme"
)

// Branch glyphs for tree mode.
const (
	treeEdge   = "├──"
	treeCorner = "└──"
	treeLine   = "│  "
	treeBlank  = "   "
)

// renderTree emits the node and its subtree depth-first pre-order. Each
// line is prefixed by one glyph per ancestor: the direct parent edge is
// a tee, or a corner for the last sibling; deeper ancestry continues
// with vertical bars over finished branches and blanks elsewhere.
func (r *Renderer) renderTree(b *strings.Builder, n *Node, prefix string) {
	b.WriteString(r.nameCell(n, true))
	if n.Meta.Err != nil && n.Meta.Kind == meta.KindDir {
		// non-dir markers are part of the name cell already
		b.WriteString(" ")
		b.WriteString(r.errorMarker(n.Meta))
	}
	b.WriteString("\n")

	children := n.Children
	for i, child := range children {
		last := i == len(children)-1

		b.WriteString(prefix)
		if last {
			b.WriteString(r.Colors.Colorize(treeCorner, theme.ElemTreeEdge))
		} else {
			b.WriteString(r.Colors.Colorize(treeEdge, theme.ElemTreeEdge))
		}
		b.WriteString(" ")

		childPrefix := prefix + treeBlank
		if !last {
			childPrefix = prefix + treeLine
		}
		r.renderTree(b, child, childPrefix)
	}
}
