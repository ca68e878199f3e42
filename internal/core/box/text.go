package box

import (
	"strings"
	"unicode"

	"resumewright/internal/core/domain"
	"resumewright/internal/core/tree"
)

// token is one word or whitespace/newline run carrying the style of the
// InlineRun it came from.
type token struct {
	text     string
	style    domain.TextStyle
	isSpace  bool
	isBreak  bool // explicit <br>
}

// tokenize splits a sequence of InlineRuns into word/space/break tokens,
// each still tagged with its originating style so multi-segment lines (§4.3)
// survive wrapping.
func tokenize(runs []tree.InlineRun) []token {
	var out []token
	for _, run := range runs {
		if run.Text == "\n" {
			out = append(out, token{isBreak: true, style: run.Style})
			continue
		}
		start := 0
		runes := []rune(run.Text)
		inSpace := false
		flush := func(end int) {
			if end <= start {
				return
			}
			out = append(out, token{text: string(runes[start:end]), style: run.Style, isSpace: inSpace})
		}
		for i, r := range runes {
			sp := unicode.IsSpace(r)
			if i == start {
				inSpace = sp
				continue
			}
			if sp != inSpace {
				flush(i)
				start = i
				inSpace = sp
			}
		}
		flush(len(runes))
	}
	return out
}

// WrapText implements §4.3's text wrapping: the minimum number of lines
// that fit the available width, breaking at whitespace with a fallback to
// break inside overlong tokens. measurer is the injected measurement
// closure (§4.3 "a measurement callback returns width...").
func WrapText(runs []tree.InlineRun, maxWidth float64, measurer TextMeasurer) []domain.TextLine {
	if maxWidth <= 0 {
		maxWidth = 1e9
	}
	tokens := tokenize(runs)

	var lines []domain.TextLine
	var cur []token
	var curWidth float64

	flushLine := func() {
		if len(cur) == 0 {
			lines = append(lines, domain.TextLine{})
			return
		}
		// Trim leading/trailing space tokens.
		start, end := 0, len(cur)
		for start < end && cur[start].isSpace {
			start++
		}
		for end > start && cur[end-1].isSpace {
			end--
		}
		lines = append(lines, tokensToLine(cur[start:end], measurer))
	}

	for i := 0; i < len(tokens); i++ {
		tk := tokens[i]
		if tk.isBreak {
			flushLine()
			cur = nil
			curWidth = 0
			continue
		}
		w := measurer.MeasureWidth(tk.text, tk.style)
		if curWidth+w <= maxWidth || len(cur) == 0 {
			if w > maxWidth && !tk.isSpace {
				// Fallback: break inside an overlong token at the character
				// level so it still fits line by line.
				parts := breakInsideToken(tk, maxWidth, measurer)
				for pi, part := range parts {
					if pi > 0 {
						flushLine()
						cur = nil
						curWidth = 0
					}
					cur = append(cur, part)
					curWidth += measurer.MeasureWidth(part.text, part.style)
				}
				continue
			}
			cur = append(cur, tk)
			curWidth += w
			continue
		}
		flushLine()
		cur = nil
		curWidth = 0
		i--
	}
	flushLine()

	if len(lines) == 0 {
		lines = append(lines, domain.TextLine{})
	}
	return lines
}

// breakInsideToken splits a single unbreakable word across the character
// boundary nearest the available width, for tokens that alone exceed
// maxWidth.
func breakInsideToken(tk token, maxWidth float64, measurer TextMeasurer) []token {
	runes := []rune(tk.text)
	var parts []token
	start := 0
	for start < len(runes) {
		end := start + 1
		for end <= len(runes) {
			w := measurer.MeasureWidth(string(runes[start:end]), tk.style)
			if w > maxWidth && end > start+1 {
				end--
				break
			}
			end++
		}
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, token{text: string(runes[start:end]), style: tk.style})
		start = end
	}
	return parts
}

// tokensToLine merges adjacent tokens of identical style into one
// TextSegment and records each segment's measured advance width.
func tokensToLine(tokens []token, measurer TextMeasurer) domain.TextLine {
	var segs []domain.TextSegment
	var sb strings.Builder
	var curStyle domain.TextStyle
	haveCur := false

	flush := func() {
		if !haveCur {
			return
		}
		text := sb.String()
		fs, fw, it, col, dec := curStyle.FontSize, curStyle.FontWeight, curStyle.Italic, curStyle.Color, curStyle.Decoration
		segs = append(segs, domain.TextSegment{
			Text:           text,
			FontSize:       &fs,
			FontWeight:     &fw,
			Italic:         &it,
			Color:          &col,
			TextDecoration: &dec,
			Width:          measurer.MeasureWidth(text, curStyle),
		})
		sb.Reset()
	}

	for _, tk := range tokens {
		if haveCur && tk.style != curStyle {
			flush()
			haveCur = false
		}
		if !haveCur {
			curStyle = tk.style
			haveCur = true
		}
		sb.WriteString(tk.text)
	}
	flush()

	return domain.TextLine{Segments: segs}
}
