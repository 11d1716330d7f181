// Package walk enumerates filesystem roots into nested meta records.
//
// Each invocation re-walks the filesystem; nothing is cached between
// runs. Independent roots are walked in parallel. Failures inside a
// subtree are attached to the affected record as inline markers so one
// unreadable directory never blanks the rest of the listing; only a root
// that cannot be stat'ed at all is reported upward.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/meain/lsd/internal/meta"
)

// ErrorKind classifies a traversal failure.
type ErrorKind int

const (
	ErrNotFound ErrorKind = iota
	ErrPermissionDenied
	ErrLoopDetected
	ErrUnsupported
)

// String returns a short label for the error kind, used in inline markers.
func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not found"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrLoopDetected:
		return "symlink loop"
	default:
		return "unsupported"
	}
}

// Error is a typed traversal failure for a single path.
type Error struct {
	Path string
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cannot list %s: %s: %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Label returns the short marker text shown inline for this failure.
func (e *Error) Label() string {
	return e.Kind.String()
}

// Options configures a traversal.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// MaxDepth bounds recursion when Recursive is set. Negative means
	// unbounded. Direct children of a root are at depth 1.
	MaxDepth int

	// FollowSymlinks descends into directories reached through symlinks.
	// Loops are detected per traversal chain and reported as markers.
	FollowSymlinks bool
}

// Result pairs a root path with its walked record or its failure.
type Result struct {
	Root string
	Meta *meta.Meta
	Err  error
}

// Walker traverses a set of root paths.
type Walker struct {
	opts Options
}

// New returns a Walker with the given options.
func New(opts Options) *Walker {
	return &Walker{opts: opts}
}

// Walk traverses every root and returns one Result per root, in the
// order the roots were given. Roots are walked concurrently; results are
// written to distinct slots so no ordering is lost.
func (w *Walker) Walk(roots []string) []Result {
	results := make([]Result, len(roots))

	var wg sync.WaitGroup
	for i, root := range roots {
		wg.Add(1)
		go func(i int, root string) {
			defer wg.Done()
			m, err := w.walkRoot(root)
			results[i] = Result{Root: root, Meta: m, Err: err}
		}(i, root)
	}
	wg.Wait()

	return results
}

// walkRoot builds the record for a single root. A file root yields a
// single entry; a directory root yields the directory with its children
// attached as content.
func (w *Walker) walkRoot(root string) (*meta.Meta, error) {
	m, err := meta.FromPath(root)
	if err != nil {
		return nil, classify(root, err)
	}

	if m.Kind == meta.KindDir || w.linksToDir(m) {
		chain := newChain()
		chain.push(descendTarget(m))
		w.listDir(m, dirPath(m), 1, chain)
		chain.pop(descendTarget(m))
	}
	return m, nil
}

// linksToDir reports whether the entry is a symlink to a directory that
// the options ask us to descend into.
func (w *Walker) linksToDir(m *meta.Meta) bool {
	if !w.opts.FollowSymlinks || m.Kind != meta.KindSymlink || m.Link == nil {
		return false
	}
	return !m.Link.Broken && m.Link.Meta.Kind == meta.KindDir
}

// dirPath returns the path to read entries from: the link target for a
// followed symlink, the entry path otherwise.
func dirPath(m *meta.Meta) string {
	if m.Kind == meta.KindSymlink && m.Link != nil && m.Link.Meta != nil {
		return m.Link.Meta.Path
	}
	return m.Path
}

// listDir reads the children of dir into m.Content, recursing while the
// options and depth bound allow. Read failures become a marker on m.
func (w *Walker) listDir(m *meta.Meta, dir string, depth int, chain *chain) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.Err = classify(dir, err)
		return
	}

	// ReadDir returns entries sorted by name, which keeps repeated runs
	// byte-identical before the sort stage even sees them.
	for _, entry := range entries {
		childPath := filepath.Join(dir, entry.Name())
		child, err := meta.FromPath(childPath)
		if err != nil {
			child = &meta.Meta{
				Name:  entry.Name(),
				Path:  childPath,
				Kind:  meta.KindUnknown,
				Depth: depth,
				Err:   err,
			}
			m.Content = append(m.Content, child)
			continue
		}
		child.Depth = depth

		if w.shouldDescend(child, depth) {
			if chain.visited(descendTarget(child)) {
				child.Err = &Error{Path: childPath, Kind: ErrLoopDetected}
			} else {
				chain.push(descendTarget(child))
				w.listDir(child, dirPath(child), depth+1, chain)
				chain.pop(descendTarget(child))
			}
		}

		m.Content = append(m.Content, child)
	}
}

// shouldDescend reports whether traversal should recurse into the entry,
// whose own children would sit at depth+1 levels below the root.
func (w *Walker) shouldDescend(m *meta.Meta, depth int) bool {
	if !w.opts.Recursive {
		return false
	}
	if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
		return false
	}
	return m.Kind == meta.KindDir || w.linksToDir(m)
}

// descendTarget returns the record whose identity marks the directory a
// descend actually enters: the link target for a followed symlink, the
// entry itself otherwise.
func descendTarget(m *meta.Meta) *meta.Meta {
	if m.Kind == meta.KindSymlink && m.Link != nil && m.Link.Meta != nil {
		return m.Link.Meta
	}
	return m
}

// classify wraps an OS or metadata error into a traversal error.
func classify(path string, err error) error {
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	kind := ErrUnsupported
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	}
	return &Error{Path: path, Kind: kind, Err: err}
}
