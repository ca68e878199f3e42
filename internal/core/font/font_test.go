package font

import "testing"

func TestVariantKeyEncodesStyle(t *testing.T) {
	cases := []struct {
		v    Variant
		want string
	}{
		{Variant{Family: "Arial", Weight: 400, Italic: false}, "Arial:400:n"},
		{Variant{Family: "Arial", Weight: 700, Italic: true}, "Arial:700:i"},
	}
	for _, c := range cases {
		if got := c.v.Key(); got != c.want {
			t.Errorf("Variant.Key() = %q, want %q", got, c.want)
		}
	}
}

func TestDecodeErrorMessageIncludesFormatAndReason(t *testing.T) {
	err := &DecodeError{Format: "woff", Reason: "bad magic"}
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected a non-empty error message")
	}
	if !contains(msg, "woff") || !contains(msg, "bad magic") {
		t.Errorf("error message %q missing format or reason", msg)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
