package font

import "testing"

func TestValidateRejectsNonSfntInput(t *testing.T) {
	if err := Validate([]byte("not a font at all")); err == nil {
		t.Error("expected an error for input that isn't a parseable sfnt face")
	}
}

func TestValidateRejectsTruncatedInput(t *testing.T) {
	if err := Validate(buildTestSfnt(map[string][]byte{"head": make([]byte, 54)})[:20]); err == nil {
		t.Error("expected an error for a truncated sfnt blob")
	}
}
