// Package validation implements the §7 input-boundary checks the HTTP API
// applies before a request ever reaches the conversion pipeline: the
// pipeline itself enforces MaxTSXBytes and UTF-8-via-parsing, but rejecting
// obviously-bad input at the edge (empty body, markup trying to smuggle a
// script tag) avoids spending a worker-pool slot on it.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"resumewright/internal/pkg/errors"
)

const (
	MaxTSXSize = 5 * 1024 * 1024 // mirrors resumewright.MaxTSXBytes
	MinTSXSize = 1
)

// ContentValidator validates a raw TSX request body before it is handed to
// resumewright.ConvertTSXToPDF.
type ContentValidator struct{}

func NewContentValidator() *ContentValidator {
	return &ContentValidator{}
}

// suspiciousPatterns catches markup that isn't TSX at all but an attempt to
// get script content rendered into a PDF page (the renderer has no script
// execution, but rejecting it early gives a clearer error than a confusing
// parse result).
var suspiciousPatterns = []string{"<script", "javascript:", "vbscript:", "data:text/html"}

// ValidateContent checks a TSX markup string for the size/encoding/safety
// properties the API boundary enforces before queuing a conversion.
func (v *ContentValidator) ValidateContent(tsx, kind string) error {
	if strings.TrimSpace(tsx) == "" {
		return errors.ValidationError("content cannot be empty", "tsx markup must contain at least one non-whitespace character")
	}
	if len(tsx) < MinTSXSize {
		return errors.ValidationError("content too small", fmt.Sprintf("tsx markup must be at least %d byte(s)", MinTSXSize))
	}
	if len(tsx) > MaxTSXSize {
		return errors.ValidationError("content too large",
			fmt.Sprintf("tsx markup exceeds the %d MB limit", MaxTSXSize/(1024*1024)))
	}
	if !utf8.ValidString(tsx) {
		return errors.ValidationError("invalid content encoding", "tsx markup must be valid UTF-8")
	}

	lower := strings.ToLower(tsx)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return errors.ValidationError("unsafe markup", fmt.Sprintf("tsx markup contains a disallowed pattern: %s", pattern))
		}
	}
	return nil
}
