package box

import (
	"testing"

	"resumewright/internal/core/domain"
	"resumewright/internal/core/jsx"
	"resumewright/internal/core/style"
	"resumewright/internal/core/tree"
)

func buildNode(t *testing.T, markup string) *tree.Node {
	t.Helper()
	root, err := jsx.FromHTML(markup)
	if err != nil {
		t.Fatal(err)
	}
	return tree.Build(root, style.RootContext())
}

func TestSolveStacksBlockChildrenVertically(t *testing.T) {
	n := buildNode(t, `<div><p>first</p><p>second</p></div>`)
	out := Solve(n, 0, 0, 400, HeuristicMeasurer{})
	if out.Content.Kind != domain.ContentContainer {
		t.Fatalf("expected container content, got %v", out.Content.Kind)
	}
	children := out.Content.Children
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[1].Y < children[0].Bottom() {
		t.Fatalf("second child (y=%f) should start at or after first child's bottom (%f)", children[1].Y, children[0].Bottom())
	}
}

func TestSolveAppliesMarginWithoutCollapsing(t *testing.T) {
	n := buildNode(t, `<div><p style="margin-top:10pt;margin-bottom:10pt">a</p><p style="margin-top:5pt">b</p></div>`)
	out := Solve(n, 0, 0, 400, HeuristicMeasurer{})
	children := out.Content.Children
	gap := children[1].Y - children[0].Bottom()
	if gap < 14.9 {
		t.Fatalf("expected uncollapsed margins to leave a 15pt gap, got %f", gap)
	}
}

func TestSolveFlexRowPlacesChildrenSideBySide(t *testing.T) {
	n := buildNode(t, `<div class="flex"><span style="width:50pt">a</span><span style="width:60pt">b</span></div>`)
	out := Solve(n, 0, 0, 400, HeuristicMeasurer{})
	children := out.Content.Children
	if len(children) != 2 {
		t.Fatalf("expected 2 flex items, got %d", len(children))
	}
	if children[1].X < children[0].Right() {
		t.Fatalf("second flex item should start at or after first item's right edge: %f < %f", children[1].X, children[0].Right())
	}
	if children[0].Y != children[1].Y {
		t.Fatalf("flex row items should share the same top by default (align-items:stretch maps to y=0 offset), got %f vs %f", children[0].Y, children[1].Y)
	}
}

func TestSolveRootIsPositionedAtOrigin(t *testing.T) {
	n := buildNode(t, `<div>hello</div>`)
	out := Solve(n, 36, 36, 400, HeuristicMeasurer{})
	if out.X != 36 || out.Y != 36 {
		t.Fatalf("expected root box at the given origin, got (%f, %f)", out.X, out.Y)
	}
}
