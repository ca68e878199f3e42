package tree

import (
	"testing"

	"resumewright/internal/core/jsx"
	"resumewright/internal/core/style"
)

func TestBuildPrunesDisplayNone(t *testing.T) {
	root, err := jsx.FromHTML(`<div><p style="display:none">hidden</p><p>visible</p></div>`)
	if err != nil {
		t.Fatal(err)
	}
	n := Build(root, style.RootContext())
	if len(n.Children) != 1 {
		t.Fatalf("expected 1 surviving child, got %d", len(n.Children))
	}
	if n.Children[0].Runs[0].Text != "visible" {
		t.Fatalf("expected surviving child to be 'visible', got %+v", n.Children[0])
	}
}

func TestBuildFlattensInlineSpans(t *testing.T) {
	root, err := jsx.FromHTML(`<div><p><span className="font-semibold">Native:</span> Russian</p></div>`)
	if err != nil {
		t.Fatal(err)
	}
	n := Build(root, style.RootContext())
	p := n.Children[0]
	if p.Kind != KindText {
		t.Fatalf("expected paragraph to be a text leaf, got kind %v", p.Kind)
	}
	var plain string
	for _, r := range p.Runs {
		plain += r.Text
	}
	if plain != "Native: Russian" {
		t.Fatalf("flattened text = %q, want %q", plain, "Native: Russian")
	}
	if p.Runs[0].Style.FontWeight != 600 {
		t.Fatalf("span run should carry font-semibold weight 600, got %v", p.Runs[0].Style.FontWeight)
	}
}

func TestBuildEmptyBodyHasNoChildren(t *testing.T) {
	root, err := jsx.FromHTML(`<div></div>`)
	if err != nil {
		t.Fatal(err)
	}
	n := Build(root, style.RootContext())
	if len(n.Children) != 0 {
		t.Fatalf("expected no children for <div></div>, got %d", len(n.Children))
	}
}
