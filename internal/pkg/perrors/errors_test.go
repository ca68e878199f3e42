package perrors

import (
	"errors"
	"testing"
)

func TestConversionErrorUnwrap(t *testing.T) {
	cause := errors.New("zlib: invalid checksum")
	ce := NewFontDecodeError("embedding-fonts", "woff inflate failed", cause)

	if !errors.Is(ce, cause) {
		t.Fatalf("errors.Is did not see through Unwrap")
	}
	if ce.Class != ClassAsset {
		t.Fatalf("Class = %s, want %s", ce.Class, ClassAsset)
	}
	if !ce.Recoverable {
		t.Fatalf("asset errors must be recoverable per §7 policy")
	}
}

func TestIsChecksCode(t *testing.T) {
	var err error = NewInvalidConfig("parsing", "page_size must be Letter or A4")
	if !Is(err, CodeInvalidConfig) {
		t.Fatalf("Is(err, CodeInvalidConfig) = false, want true")
	}
	if Is(err, CodeFontDecodeError) {
		t.Fatalf("Is(err, CodeFontDecodeError) = true, want false")
	}
}

func TestStructuralErrorsAreNotRecoverable(t *testing.T) {
	ce := NewPDFAssemblyError("generating-pdf", "could not place box on empty page", nil)
	if IsRecoverable(ce) {
		t.Fatalf("structural errors must not be recoverable")
	}
}

func TestWithDetailAndSuggestion(t *testing.T) {
	ce := NewTSXParseError("parsing", "unexpected end of input", nil).
		WithDetail("line", 42).
		WithSuggestion("check for an unclosed <div>")

	if ce.Metadata["line"] != 42 {
		t.Fatalf("WithDetail did not stick")
	}
	if len(ce.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions (default + added), got %d", len(ce.Suggestions))
	}
}

func TestFatalIsNotRecoverable(t *testing.T) {
	ce := Fatal("generating-pdf", errors.New("out of memory"))
	if ce.Recoverable {
		t.Fatalf("fatal errors must not be recoverable")
	}
	if ce.Class != ClassFatal {
		t.Fatalf("Class = %s, want fatal", ce.Class)
	}
}
