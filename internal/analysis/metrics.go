package analysis

import (
	"regexp"
	"strings"
)

// KeyMetric is one headline figure mined out of raw text.
type KeyMetric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	currencyPattern = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?\s*[조억만]\s*(?:원|달러)?`)
	percentPattern  = regexp.MustCompile(`[+\-]?\d+(?:\.\d+)?%`)
	countPattern    = regexp.MustCompile(`\d+\s*[개건곳명차]`)
)

// KeyMetrics scans text for a currency amount, a signed percentage and a
// count, in that fixed category order, taking the first match of each kind.
// The result is always exactly three entries, padded with a placeholder.
func KeyMetrics(text string) []KeyMetric {
	var metrics []KeyMetric

	if m := currencyPattern.FindString(text); m != "" {
		metrics = append(metrics, KeyMetric{Value: strings.TrimSpace(m), Label: "주요 예산/규모"})
	}
	if m := percentPattern.FindString(text); m != "" {
		metrics = append(metrics, KeyMetric{Value: m, Label: "증감률"})
	}
	if m := countPattern.FindString(text); m != "" {
		metrics = append(metrics, KeyMetric{Value: m, Label: "주요 지표"})
	}

	for len(metrics) < 3 {
		metrics = append(metrics, KeyMetric{Value: "-", Label: "데이터 없음"})
	}
	return metrics[:3]
}
