package display

import (
	"strings"
	"testing"

	"github.com/meain/lsd/internal/meta"
)

func TestRenderLongAlignedColumns(t *testing.T) {
	r := plainRenderer(80)
	roots := []*meta.Meta{dir("top", file("alpha", 42), file("bb", 2048))}

	got := r.Render(r.Build(roots), ModeLong)
	want := strings.Join([]string{
		"-rw-r--r-- alice staff    42 B Jun 10 09:30 alpha",
		"-rw-r--r-- alice staff 2.0 KiB Jun 10 09:30 bb",
		"",
	}, "\n")
	if got != want {
		t.Errorf("long output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLongErrorPlaceholders(t *testing.T) {
	r := plainRenderer(80)
	ghost := &meta.Meta{
		Name: "ghost",
		Kind: meta.KindUnknown,
		Err:  &meta.Error{Path: "ghost", Kind: meta.ErrNotFound},
	}
	roots := []*meta.Meta{dir("top", file("alpha", 42), ghost)}

	got := r.Render(r.Build(roots), ModeLong)
	if !strings.Contains(got, "??????????") {
		t.Errorf("failed entry must render permission placeholders:\n%s", got)
	}
	if !strings.Contains(got, "ghost [not found]") {
		t.Errorf("failed entry must keep its name and marker:\n%s", got)
	}
	if !strings.Contains(got, "alpha") {
		t.Errorf("one failed entry must not drop the rest of the listing:\n%s", got)
	}
}

func TestRenderLongDirectorySize(t *testing.T) {
	roots := []*meta.Meta{dir("top", dir("sub", file("inner", 1024)))}

	r := plainRenderer(80)
	got := r.Render(r.Build(roots), ModeLong)
	if !strings.Contains(got, "0 B") {
		t.Errorf("directory size defaults to zero:\n%s", got)
	}

	r = plainRenderer(80)
	r.TotalSize = true
	got = r.Render(r.Build(roots), ModeLong)
	if !strings.Contains(got, "1.0 KiB Jun 10 09:30 sub") {
		t.Errorf("total-size must aggregate descendants into the directory row:\n%s", got)
	}
}

func TestRenderLongSymlinkRow(t *testing.T) {
	r := plainRenderer(80)
	link := &meta.Meta{
		Name:     "here",
		Kind:     meta.KindSymlink,
		Mode:     0o777,
		Owner:    "alice",
		Group:    "staff",
		Modified: file("x", 1).Modified,
		Link:     &meta.LinkTarget{Path: "there"},
	}
	roots := []*meta.Meta{dir("top", link)}

	got := r.Render(r.Build(roots), ModeLong)
	if !strings.Contains(got, "lrwxrwxrwx") {
		t.Errorf("symlink row must carry the l type char:\n%s", got)
	}
	if !strings.Contains(got, "here ⇒ there") {
		t.Errorf("symlink row must show the target:\n%s", got)
	}
}

func TestRenderLongOldDateFormat(t *testing.T) {
	r := plainRenderer(80)
	old := file("ancient", 1)
	old.Modified = r.Now.AddDate(-2, 0, 0)
	roots := []*meta.Meta{dir("top", old)}

	got := r.Render(r.Build(roots), ModeLong)
	if !strings.Contains(got, "Jun 15  2022") {
		t.Errorf("entries older than six months render year, not time:\n%s", got)
	}
}
