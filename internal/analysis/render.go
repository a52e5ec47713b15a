package analysis

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
)

// Line is one presentation line with emphasis spans resolved.
type Line struct {
	Spans []Span `json:"spans"`
}

// StudyGuide is the render-ready study-note view of an analysis. Caps on
// the line counts are a presentation concern and applied here, not in Parse.
type StudyGuide struct {
	Metrics      []KeyMetric `json:"metrics"`
	Summary      []Line      `json:"summary"`
	Background   []Line      `json:"background"`
	Problems     []Line      `json:"problems"`
	ShortTerm    []Line      `json:"shortTerm"`
	MidTerm      []Line      `json:"midTerm"`
	Quantitative []Line      `json:"quantitative"`
	Qualitative  []Line      `json:"qualitative"`
	HTML         string      `json:"html"`
}

var markdown = goldmark.New()

// RenderHTML converts the raw analysis markdown to HTML for the collapsed
// original-text view.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildStudyGuide assembles the study-note view from an article summary and
// the raw analysis markdown.
func BuildStudyGuide(summary, md string) StudyGuide {
	parsed := Parse(md)

	guide := StudyGuide{
		Metrics:      KeyMetrics(summary + " " + md),
		Summary:      proseLines(summary, 10, 4),
		Background:   proseLines(parsed.Background, 10, 4),
		Problems:     bulletLines(capSlice(parsed.Problems, 5)),
		ShortTerm:    bulletLines(parsed.ShortTerm),
		MidTerm:      bulletLines(parsed.MidTerm),
		Quantitative: blockLines(parsed.Quantitative),
		Qualitative:  blockLines(parsed.Qualitative),
	}

	if html, err := RenderHTML(md); err == nil {
		guide.HTML = html
	}
	return guide
}

// proseLines re-splits a prose block into sentences for bulleting, keeping
// at most max sentences longer than minRunes.
func proseLines(prose string, minRunes, max int) []Line {
	var lines []Line
	for _, sent := range SplitSentences(prose) {
		if utf8.RuneCountInString(sent) <= minRunes {
			continue
		}
		lines = append(lines, Line{Spans: SplitEmphasis(sent)})
		if len(lines) == max {
			break
		}
	}
	return lines
}

func bulletLines(items []string) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{Spans: SplitEmphasis(item)})
	}
	return lines
}

// blockLines splits a pre-joined effects block back into lines.
func blockLines(block string) []Line {
	if block == "" {
		return nil
	}
	var lines []Line
	for _, item := range strings.Split(block, "\n") {
		if item == "" {
			continue
		}
		lines = append(lines, Line{Spans: SplitEmphasis(item)})
	}
	return lines
}
