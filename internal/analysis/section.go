// Package analysis mines structure out of generated markdown. The upstream
// model is instructed to produce a fixed Korean heading vocabulary but the
// output is not schema-guaranteed, so every function here degrades to a zero
// value instead of failing.
package analysis

import "strings"

// headingLevel returns the number of leading '#' characters of a trimmed
// line, or 0 when the line is not a heading.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}

// Section returns the body of the first heading line ("##" or deeper) whose
// text contains keyword, case-insensitive. The body runs until the next
// heading of the same or shallower level, so subsections stay inside.
// Returns "" when no heading matches.
func Section(md, keyword string) string {
	return SectionAny(md, keyword)
}

// SectionAny behaves like Section but accepts the first heading containing
// any of the given keywords, in document order.
func SectionAny(md string, keywords ...string) string {
	lines := strings.Split(md, "\n")
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	start := -1
	level := 0
	for i, line := range lines {
		t := strings.TrimSpace(line)
		lv := headingLevel(t)
		if lv < 2 {
			continue
		}
		lt := strings.ToLower(t)
		for _, kw := range lowered {
			if strings.Contains(lt, kw) {
				start = i + 1
				level = lv
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		lv := headingLevel(strings.TrimSpace(lines[i]))
		if lv >= 2 && lv <= level {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

// Subsection locates a "###"/"####" heading containing keyword within an
// already-captured section body and returns everything up to the next
// heading of any level. Returns "" when no subsection matches.
func Subsection(section, keyword string) string {
	lines := strings.Split(section, "\n")
	kw := strings.ToLower(keyword)

	start := -1
	for i, line := range lines {
		t := strings.TrimSpace(line)
		lv := headingLevel(t)
		if lv < 3 || lv > 4 {
			continue
		}
		if strings.Contains(strings.ToLower(t), kw) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if headingLevel(strings.TrimSpace(lines[i])) >= 2 {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

// StripHeadings drops every heading line from text.
func StripHeadings(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// collapseWhitespace joins lines and squeezes runs of whitespace to one space.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
