package jsx

import "testing"

func TestFromHTMLBasicTree(t *testing.T) {
	root, err := FromHTML(`<div><h1>Name</h1><p style="color:red" className="font-semibold">Hi</p></div>`)
	if err != nil {
		t.Fatalf("FromHTML error: %v", err)
	}
	if root.Tag != "div" {
		t.Fatalf("root.Tag = %q, want div", root.Tag)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	h1 := root.Children[0]
	if h1.Tag != "h1" || len(h1.Children) != 1 || h1.Children[0].Text != "Name" {
		t.Fatalf("h1 node malformed: %+v", h1)
	}
	p := root.Children[1]
	if p.ClassName() != "font-semibold" {
		t.Fatalf("ClassName() = %q, want font-semibold", p.ClassName())
	}
	if p.Style() != "color:red" {
		t.Fatalf("Style() = %q, want color:red", p.Style())
	}
}

func TestFromHTMLEmptyBody(t *testing.T) {
	root, err := FromHTML(`<div></div>`)
	if err != nil {
		t.Fatalf("FromHTML error: %v", err)
	}
	if root.Tag != "div" || len(root.Children) != 0 {
		t.Fatalf("expected empty div, got %+v", root)
	}
}

func TestNewElementDefaultsAttributes(t *testing.T) {
	n := NewElement("span", nil, NewText("hi"))
	if n.Attributes == nil {
		t.Fatal("NewElement should default Attributes to a non-nil map")
	}
	if _, ok := n.Attr("missing"); ok {
		t.Fatal("Attr should report false for a missing key")
	}
}
