package display

import (
	"strings"
	"testing"

	"github.com/meain/lsd/internal/meta"
)

func renderTreeOf(roots ...*meta.Meta) string {
	r := plainRenderer(80)
	return r.Render(r.Build(roots), ModeTree)
}

func TestTreeStructure(t *testing.T) {
	got := renderTreeOf(dir("top",
		file("a.txt", 1),
		dir("sub", file("b", 1), file("c", 1)),
		file("z", 1),
	))

	want := strings.Join([]string{
		"top",
		"├── a.txt",
		"├── sub",
		"│  ├── b",
		"│  └── c",
		"└── z",
		"",
	}, "\n")
	if got != want {
		t.Errorf("tree output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeLastChildGetsCorner(t *testing.T) {
	got := renderTreeOf(dir("top", file("a", 1), file("b", 1), file("c", 1)))

	if strings.Count(got, treeCorner) != 1 {
		t.Errorf("exactly one corner expected for a single sibling group:\n%s", got)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, treeCorner) {
		t.Errorf("last sibling %q must start with %q", last, treeCorner)
	}
}

func TestTreeDeepPrefixes(t *testing.T) {
	got := renderTreeOf(dir("a", dir("b", dir("c", file("leaf", 1)))))

	want := strings.Join([]string{
		"a",
		"└── b",
		"   └── c",
		"      └── leaf",
		"",
	}, "\n")
	if got != want {
		t.Errorf("nested corners mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeContinuationBarOnlyUnderOpenBranches(t *testing.T) {
	// "sub" is not the last sibling, so its children carry the vertical
	// bar; "tail" is last, so its child line has a blank in that slot.
	got := renderTreeOf(dir("top",
		dir("sub", file("x", 1)),
		dir("tail", file("y", 1)),
	))

	want := strings.Join([]string{
		"top",
		"├── sub",
		"│  └── x",
		"└── tail",
		"   └── y",
		"",
	}, "\n")
	if got != want {
		t.Errorf("continuation prefixes mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeShowsSymlinkTargets(t *testing.T) {
	link := &meta.Meta{
		Name: "here",
		Kind: meta.KindSymlink,
		Link: &meta.LinkTarget{Path: "there"},
	}
	got := renderTreeOf(dir("top", link))

	if !strings.Contains(got, "here ⇒ there") {
		t.Errorf("tree mode must render symlink targets:\n%s", got)
	}
}

func TestTreeUnreadableDirMarker(t *testing.T) {
	locked := &meta.Meta{
		Name: "locked",
		Kind: meta.KindDir,
		Err:  &meta.Error{Path: "locked", Kind: meta.ErrPermissionDenied},
	}
	got := renderTreeOf(dir("top", locked))

	if !strings.Contains(got, "locked [permission denied]") {
		t.Errorf("unreadable directory must carry its marker:\n%s", got)
	}
}

func TestTreeMultipleRoots(t *testing.T) {
	got := renderTreeOf(
		dir("one", file("a", 1)),
		dir("two", file("b", 1)),
	)

	want := strings.Join([]string{
		"one",
		"└── a",
		"two",
		"└── b",
		"",
	}, "\n")
	if got != want {
		t.Errorf("each root must anchor its own tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
