package crawler

import (
	"regexp"
	"strings"
)

// categoryRule pairs a category name with the keywords that select it.
// Rules are checked in order and the first match wins, so the more specific
// categories come first.
type categoryRule struct {
	name    string
	pattern *regexp.Regexp
}

var categoryRules = []categoryRule{
	{"R&D정책", regexp.MustCompile(`r&d|연구개발|기술개발|연구비|과제`)},
	{"글로벌진출", regexp.MustCompile(`글로벌|해외|수출|진출|fda|ema|국제`)},
	{"규제인허가", regexp.MustCompile(`규제|법령|인허가|승인|제도|법률`)},
	{"채용분석", regexp.MustCompile(`채용|인재|일자리|취업|고용`)},
	{"디지털헬스케어", regexp.MustCompile(`디지털|ai|인공지능|빅데이터|dtx`)},
	{"의료기기", regexp.MustCompile(`의료기기|기기|진단`)},
	{"바이오헬스", regexp.MustCompile(`바이오|제약|의약품|백신`)},
}

// defaultCategory is used when no rule matches.
const defaultCategory = "산업동향"

// Categorize classifies an article by keyword over its title and body.
func Categorize(title, content string) string {
	text := strings.ToLower(title + " " + content)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(text) {
			return rule.name
		}
	}
	return defaultCategory
}
