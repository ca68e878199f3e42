// Package resumewright is the top-level library surface: the four §6 entry
// points (ConvertTSXToPDF, ExtractCVMetadata, DetectFonts,
// ValidateATSCompatibility), orchestrating C1-C8 into a single synchronous
// call per conversion. Grounded on the teacher's
// internal/core/services.PrintService (a thin façade calling into the
// engine/render packages in sequence), adapted from an async job-queue
// model to one synchronous call per §5.
package resumewright

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"resumewright/internal/core/domain"
)

// Standard selects the PDF conformance level a conversion targets (§6
// Config.standard).
type Standard string

const (
	PDF17  Standard = "PDF17"
	PDFA1b Standard = "PDFA1b"
)

// Config is the §6 per-conversion options bag: page geometry, conformance
// level, and bibliographic metadata. Deliberately distinct from
// internal/pkg/config.AppConfig (the ambient cmd/server settings) — per §6,
// the library entry point always takes this directly, never reading a file
// or the environment itself.
type Config struct {
	PageSize domain.PageSize `yaml:"page_size"`
	Margin   domain.Spacing  `yaml:"margin"`
	Standard Standard        `yaml:"standard"`

	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
	Creator  string `yaml:"creator"`
}

// DefaultConfig is Letter-size, PDF17, 54pt (0.75in) margins on all sides —
// the fallback used whenever a caller doesn't override a field.
func DefaultConfig() Config {
	return Config{
		PageSize: domain.PageLetter,
		Margin:   domain.ExpandSpacing(54),
		Standard: PDF17,
	}
}

// LoadConfigYAML parses a YAML document into a Config, starting from
// DefaultConfig so an omitted field keeps its default (§6 [EXPANDED]
// Config loading, grounded on the teacher's internal/pkg/config loader
// using gopkg.in/yaml.v3 — the CLI/demo-server convenience path; the
// library entry point itself always takes a Config value directly).
func LoadConfigYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("resumewright: parsing config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the §6 "recognized options" for obviously invalid values.
func (c Config) Validate() error {
	if c.PageSize.WidthPt <= 0 || c.PageSize.HeightPt <= 0 {
		return fmt.Errorf("resumewright: invalid config: page size must have positive width and height")
	}
	if c.Margin.Top < 0 || c.Margin.Right < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 {
		return fmt.Errorf("resumewright: invalid config: margin values must be non-negative")
	}
	if c.Standard != PDF17 && c.Standard != PDFA1b {
		return fmt.Errorf("resumewright: invalid config: unrecognized standard %q", c.Standard)
	}
	contentWidth := c.PageSize.WidthPt - c.Margin.Left - c.Margin.Right
	contentHeight := c.PageSize.HeightPt - c.Margin.Top - c.Margin.Bottom
	if contentWidth <= 0 || contentHeight <= 0 {
		return fmt.Errorf("resumewright: invalid config: margins leave no content area")
	}
	return nil
}

// contentArea returns the page's usable content box in CSS top-left points.
func (c Config) contentArea() (originX, originY, width, height float64) {
	return c.Margin.Left, c.Margin.Top,
		c.PageSize.WidthPt - c.Margin.Left - c.Margin.Right,
		c.PageSize.HeightPt - c.Margin.Top - c.Margin.Bottom
}
