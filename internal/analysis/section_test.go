package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestSection_CapturesUntilSiblingHeading(t *testing.T) {
	md := "## 개요\n\n### 현황 및 배경\n첫 문단.\n\n#### 세부\n- 항목\n\n### 문제점\n- 다른 내용\n"

	got := Section(md, "현황")
	if got == "" {
		t.Fatal("expected section body, got empty string")
	}
	if want := "첫 문단."; !contains(got, want) {
		t.Errorf("expected body to contain %q, got %q", want, got)
	}
	// Deeper subsections stay inside the captured body.
	if !contains(got, "#### 세부") {
		t.Errorf("expected nested subsection inside body, got %q", got)
	}
	// Sibling sections do not leak in.
	if contains(got, "다른 내용") {
		t.Errorf("expected body to stop at sibling heading, got %q", got)
	}
}

func TestSection_KeywordCaseInsensitive(t *testing.T) {
	md := "## R&D Budget\nbody text\n"
	if got := Section(md, "r&d"); !contains(got, "body text") {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
}

func TestSection_MissingKeyword(t *testing.T) {
	md := "## 현황\n내용\n"
	if got := Section(md, "문제점"); got != "" {
		t.Errorf("expected empty string for missing heading, got %q", got)
	}
}

func TestSectionAny_FirstInDocumentOrder(t *testing.T) {
	md := "## 효과 분석\n효과 내용\n\n## 기대 수준\n기대 내용\n"
	got := SectionAny(md, "기대", "효과")
	if !contains(got, "효과 내용") || contains(got, "기대 내용") {
		t.Errorf("expected first matching heading in document order, got %q", got)
	}
}

func TestSubsection(t *testing.T) {
	sec := "설명 문단\n\n#### 단기\n- 빠른 실행 방안\n#### 중기\n- 체계 구축 방안\n"

	short := Subsection(sec, "단기")
	if !contains(short, "빠른 실행 방안") {
		t.Errorf("expected short-term body, got %q", short)
	}
	if contains(short, "체계 구축 방안") {
		t.Errorf("expected short-term body to stop at next heading, got %q", short)
	}

	if got := Subsection(sec, "장기"); got != "" {
		t.Errorf("expected empty string for missing subsection, got %q", got)
	}
}

func TestSubsection_IgnoresTopLevelHeadings(t *testing.T) {
	// "## 단기" is a section heading, not a subsection.
	sec := "## 단기\n- 내용 일부 항목\n"
	if got := Subsection(sec, "단기"); got != "" {
		t.Errorf("expected level-2 headings to be ignored, got %q", got)
	}
}

func TestStripHeadings(t *testing.T) {
	got := StripHeadings("## 제목\n본문 첫 줄\n### 소제목\n본문 둘째 줄")
	want := "본문 첫 줄\n본문 둘째 줄"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "korean particle boundary",
			input: "수출이 증가했다 정부는 예산을 편성했다",
			want:  []string{"수출이 증가했다", "정부는 예산을 편성했다"},
		},
		{
			name:  "period boundary",
			input: "First sentence. Second sentence.",
			want:  []string{"First sentence.", "Second sentence."},
		},
		{
			name:  "no boundary",
			input: "조각",
			want:  []string{"조각"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
