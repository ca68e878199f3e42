package flatten

import (
	"testing"

	"resumewright/internal/core/box"
	"resumewright/internal/core/domain"
	"resumewright/internal/core/jsx"
	"resumewright/internal/core/style"
	"resumewright/internal/core/tree"
)

func solve(t *testing.T, markup string) *domain.LayoutBox {
	t.Helper()
	root, err := jsx.FromHTML(markup)
	if err != nil {
		t.Fatal(err)
	}
	n := tree.Build(root, style.RootContext())
	return box.Solve(n, 0, 0, 400, box.HeuristicMeasurer{})
}

func TestFlattenProducesOnlyLeaves(t *testing.T) {
	solved := solve(t, `<div><section><p>one</p><p>two</p></section></div>`)
	leaves := Flatten(solved)
	for _, l := range leaves {
		if l.Content.IsContainer() {
			t.Fatalf("flattened output should contain no nested containers, got %+v", l)
		}
	}
	if len(leaves) != 2 {
		t.Fatalf("expected 2 flattened paragraph leaves, got %d", len(leaves))
	}
}

func TestFlattenPreservesFlexRowAsAtomicUnit(t *testing.T) {
	solved := solve(t, `<div><div class="flex"><span>Title</span><span>Date</span></div></div>`)
	leaves := Flatten(solved)
	if len(leaves) != 1 {
		t.Fatalf("expected the flex row to survive as a single atomic box, got %d leaves", len(leaves))
	}
	if !leaves[0].Content.IsContainer() {
		t.Fatalf("preserved flex row should keep its container content so children keep local positions")
	}
}

func TestFlattenEmitsSyntheticBorderBoxForBorderBottom(t *testing.T) {
	solved := solve(t, `<div><section style="border-bottom:1pt solid black"><h2>Skills</h2></section></div>`)
	leaves := Flatten(solved)
	var sawBorderBox bool
	for _, l := range leaves {
		if l.Content.IsEmpty() && l.Style.Box.Border[2].Visible() {
			sawBorderBox = true
			if l.Height != 0 {
				t.Fatalf("border box should be zero-height, got %f", l.Height)
			}
		}
	}
	if !sawBorderBox {
		t.Fatal("expected a synthetic zero-height border box after dissolving the bordered section")
	}
}

func TestFlattenDropsBorderlessEmptyBoxes(t *testing.T) {
	solved := solve(t, `<div><section><p>only</p></section></div>`)
	leaves := Flatten(solved)
	for _, l := range leaves {
		if l.Content.IsEmpty() {
			t.Fatal("a border-less container dissolve should not leave behind an Empty box")
		}
	}
}
