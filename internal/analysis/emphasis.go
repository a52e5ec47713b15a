package analysis

import "regexp"

// Span is one alternating segment of emphasis-rendered text.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Emphasis spans must open and close on the same line.
var emphasisSpan = regexp.MustCompile(`\*\*[^*\n]+\*\*`)

// SplitEmphasis splits a string containing **text** spans into alternating
// plain and bold segments for presentation. Unclosed markers stay literal.
func SplitEmphasis(s string) []Span {
	if s == "" {
		return nil
	}
	var spans []Span
	last := 0
	for _, loc := range emphasisSpan.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: s[last:loc[0]]})
		}
		spans = append(spans, Span{Text: s[loc[0]+2 : loc[1]-2], Bold: true})
		last = loc[1]
	}
	if last < len(s) {
		spans = append(spans, Span{Text: s[last:]})
	}
	return spans
}
