package analysis

import (
	"strings"
	"unicode"
)

// SplitSentences breaks prose on sentence boundaries: a '.' or the Korean
// sentence-final particle '다' followed by whitespace.
func SplitSentences(s string) []string {
	var out []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if (runes[i] == '.' || runes[i] == '다') && unicode.IsSpace(runes[i+1]) {
			if sent := strings.TrimSpace(string(runes[start : i+1])); sent != "" {
				out = append(out, sent)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}
