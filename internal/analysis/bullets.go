package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	bulletMarker    = regexp.MustCompile(`^[•\-*]\s*`)
	bulletMarkerAlt = regexp.MustCompile(`^[•\-○*]\s*`)
	boldLead        = regexp.MustCompile(`^\*\*([^*]+)\*\*[:\s]*(.*)`)
)

// cleanBullet strips the leading marker, collapses a "**bold**: rest" prefix
// into "bold: rest" and removes any residual emphasis markers.
func cleanBullet(line string, marker *regexp.Regexp) string {
	cleaned := marker.ReplaceAllString(line, "")
	if m := boldLead.FindStringSubmatch(cleaned); m != nil {
		if m[2] != "" {
			cleaned = m[1] + ": " + m[2]
		} else {
			cleaned = m[1]
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(cleaned, "**", ""))
}

// Bullets extracts bullet items from section text. Lines must start with
// one of "•", "-", "*"; heading lines are ignored and anything shorter than
// six characters after cleanup is treated as noise.
func Bullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !bulletMarker.MatchString(line) || strings.HasPrefix(line, "#") {
			continue
		}
		cleaned := cleanBullet(line, bulletMarker)
		if utf8.RuneCountInString(cleaned) > 5 {
			out = append(out, cleaned)
		}
	}
	return out
}

// BulletsCapped is the sibling extractor used by the proposal-template
// parser: it additionally accepts "○" markers, skips lines that still carry
// heading markers, and caps the result at max items.
func BulletsCapped(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !bulletMarkerAlt.MatchString(line) || strings.Contains(line, "##") {
			continue
		}
		cleaned := cleanBullet(line, bulletMarkerAlt)
		if utf8.RuneCountInString(cleaned) > 5 {
			out = append(out, cleaned)
		}
		if len(out) == max {
			break
		}
	}
	return out
}
