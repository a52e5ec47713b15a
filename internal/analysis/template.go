package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TemplateFields feeds the fixed six-pane business-proposal render.
type TemplateFields struct {
	ProjectName string   `json:"projectName"`
	Background  []string `json:"background"`
	Objectives  []string `json:"objectives"`
	Problems    []string `json:"problems"`
	Solutions   []string `json:"solutions"`
	Contents    []string `json:"contents"`
}

var bracketTag = regexp.MustCompile(`\[[^\]]*\]`)

// ParseTemplate maps generated markdown onto the proposal template. It
// shares the section locator with Parse but applies its own per-field caps,
// and cross-fills solutions and contents so the template never shows two
// empty panes when the source had at least one populated list.
func ParseTemplate(md, title string) TemplateFields {
	res := TemplateFields{
		Background: []string{},
		Objectives: []string{},
		Problems:   []string{},
		Solutions:  []string{},
		Contents:   []string{},
	}

	res.ProjectName = strings.TrimSpace(bracketTag.ReplaceAllString(title, ""))
	if md == "" {
		return res
	}

	if sec := Section(md, "현황"); sec != "" {
		prose := collapseWhitespace(StripHeadings(sec))
		for _, sent := range SplitSentences(prose) {
			if utf8.RuneCountInString(sent) > 15 && !strings.Contains(sent, "##") {
				res.Background = append(res.Background, sent)
				if len(res.Background) == 3 {
					break
				}
			}
		}
	}

	if sec := Section(md, "문제점"); sec != "" {
		res.Problems = append(res.Problems, BulletsCapped(sec, 3)...)
	}

	// Short- and mid-term solutions share one section; take them together.
	if sec := Section(md, "방안"); sec != "" {
		res.Solutions = append(res.Solutions, BulletsCapped(sec, 6)...)
	}

	// The effects bullets serve double duty: the first two become the
	// objectives, the first three the contents of the fixed template.
	if sec := Section(md, "기대"); sec != "" {
		all := BulletsCapped(sec, 6)
		res.Objectives = append(res.Objectives, capSlice(all, 2)...)
		res.Contents = append(res.Contents, capSlice(all, 3)...)
	}

	if len(res.Solutions) == 0 && len(res.Contents) > 0 {
		res.Solutions = append(res.Solutions, res.Contents...)
	}
	if len(res.Contents) == 0 && len(res.Solutions) > 0 {
		res.Contents = append(res.Contents, capSlice(res.Solutions, 3)...)
	}

	return res
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
