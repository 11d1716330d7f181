package walk

import (
	"sync"

	"github.com/meain/lsd/internal/meta"
)

// nodeID identifies a directory by device and inode so a symlink pointing
// back into its own ancestry is recognized whatever path reached it.
type nodeID struct {
	device uint64
	inode  uint64
}

// chain is the visited set for one traversal chain, the ancestor path
// from a root down to the entry currently being visited. Entries are
// removed on backtrack, so sibling subtrees may legitimately revisit a
// directory that appeared elsewhere in the tree.
type chain struct {
	mu   sync.Mutex
	seen map[nodeID]struct{}
}

func newChain() *chain {
	return &chain{seen: make(map[nodeID]struct{})}
}

func (c *chain) id(m *meta.Meta) nodeID {
	return nodeID{device: m.Device, inode: m.Inode}
}

func (c *chain) visited(m *meta.Meta) bool {
	// Entries without stat identity (platform fallback) cannot loop-check;
	// treat them as unvisited.
	if m.Inode == 0 && m.Device == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[c.id(m)]
	return ok
}

func (c *chain) push(m *meta.Meta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[c.id(m)] = struct{}{}
}

func (c *chain) pop(m *meta.Meta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.seen, c.id(m))
}
