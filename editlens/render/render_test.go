package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/diff"
)

func TestDiffLines(t *testing.T) {
	a := "one\ntwo\nthree\n"
	b := "one\ndeux\nthree\nfour\n"

	lines, err := diffLines("test.txt", a, b)
	if err != nil {
		t.Fatalf("diffLines: %v", err)
	}

	type row struct {
		Op     diff.Op
		X, Y   int
		HasTxt bool
	}
	var got []row
	for _, l := range lines {
		got = append(got, row{l.Op, l.XLineNo, l.YLineNo, l.Content != ""})
	}
	want := []row{
		{diff.Match, 1, 1, true},
		{diff.Delete, 2, -1, true},
		{diff.Insert, -1, 2, true},
		{diff.Match, 3, 3, true},
		{diff.Insert, -1, 4, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diffLines result is different (-want, +got):\n%s", diff)
	}
}

func TestDiffPage(t *testing.T) {
	out, err := DiffPage("a.txt", "b.txt", []byte("same\nold\n"), []byte("same\nnew\n"))
	if err != nil {
		t.Fatalf("DiffPage: %v", err)
	}
	page := string(out)
	for _, want := range []string{"a.txt", "b.txt", "old", "new", "del", "ins"} {
		if !strings.Contains(page, want) {
			t.Errorf("report does not contain %q:\n%s", want, page)
		}
	}
}

func TestHighlightEscapesHTML(t *testing.T) {
	hl := newHighlighter("test.txt")
	got, err := hl.highlight("a < b && c > d\n")
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if strings.Contains(string(got), "< b") {
		t.Errorf("highlight did not escape HTML: %q", got)
	}
}
