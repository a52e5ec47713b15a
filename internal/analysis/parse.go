package analysis

import "strings"

// AnalysisResult is the study-guide view of a generated briefing analysis.
// Quantitative and qualitative effects are pre-joined blocks, not lists,
// because their consumer renders them as single panes.
type AnalysisResult struct {
	Background   string   `json:"background"`
	Problems     []string `json:"problems"`
	ShortTerm    []string `json:"shortTerm"`
	MidTerm      []string `json:"midTerm"`
	Quantitative string   `json:"quantitative"`
	Qualitative  string   `json:"qualitative"`
}

// Parse extracts the study-guide sections from generated markdown.
// A missing heading yields the field's zero value; Parse never fails.
func Parse(md string) AnalysisResult {
	res := AnalysisResult{
		Problems:  []string{},
		ShortTerm: []string{},
		MidTerm:   []string{},
	}
	if md == "" {
		return res
	}

	if sec := Section(md, "현황"); sec != "" {
		res.Background = collapseWhitespace(StripHeadings(sec))
	}

	if sec := Section(md, "문제점"); sec != "" {
		res.Problems = append(res.Problems, Bullets(sec)...)
	}

	if sec := Section(md, "방안"); sec != "" {
		res.ShortTerm = append(res.ShortTerm, Bullets(Subsection(sec, "단기"))...)
		res.MidTerm = append(res.MidTerm, Bullets(Subsection(sec, "중기"))...)
	}

	if sec := SectionAny(md, "기대", "효과"); sec != "" {
		res.Quantitative = strings.Join(Bullets(Subsection(sec, "정량")), "\n")
		res.Qualitative = strings.Join(Bullets(Subsection(sec, "정성")), "\n")
	}

	return res
}
