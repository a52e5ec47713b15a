package analysis

import (
	"reflect"
	"testing"
)

const sampleAnalysis = `## 파트1: 브리핑 분석

### 📋 현황 및 배경
국내 바이오헬스 수출은 2025년 기준 **254억 달러**로 전년 대비 15% 증가했다. 정부는 3.2조 원 규모의 R&D 예산을 편성했다.

### ⚠️ 핵심 문제점
- **전문인력 부족**: 현장 수요 대비 공급이 부족하다
- 규제 정비 속도가 산업 변화를 따라가지 못한다
- 짧음

### 💡 대응 방안
#### 단기
- 채용 연계형 교육 과정을 즉시 확대한다
- **예산**: 120억 확대
#### 중기
- 규제 샌드박스 상설 운영 체계를 구축한다

### 📈 기대 효과
#### 정량적 성과
- 전문인력 1,000명 양성
- 수출액 10% 추가 성장
#### 정성적 성과
- 산업 생태계의 지속 가능성 제고
`

func TestParse_SampleAnalysis(t *testing.T) {
	got := Parse(sampleAnalysis)

	if !contains(got.Background, "254억 달러") || contains(got.Background, "\n") {
		t.Errorf("expected collapsed background prose, got %q", got.Background)
	}

	wantProblems := []string{
		"전문인력 부족: 현장 수요 대비 공급이 부족하다",
		"규제 정비 속도가 산업 변화를 따라가지 못한다",
	}
	if !reflect.DeepEqual(got.Problems, wantProblems) {
		t.Errorf("expected problems %v, got %v", wantProblems, got.Problems)
	}

	wantShort := []string{
		"채용 연계형 교육 과정을 즉시 확대한다",
		"예산: 120억 확대",
	}
	if !reflect.DeepEqual(got.ShortTerm, wantShort) {
		t.Errorf("expected short-term %v, got %v", wantShort, got.ShortTerm)
	}

	wantMid := []string{"규제 샌드박스 상설 운영 체계를 구축한다"}
	if !reflect.DeepEqual(got.MidTerm, wantMid) {
		t.Errorf("expected mid-term %v, got %v", wantMid, got.MidTerm)
	}

	wantQuant := "전문인력 1,000명 양성\n수출액 10% 추가 성장"
	if got.Quantitative != wantQuant {
		t.Errorf("expected quantitative %q, got %q", wantQuant, got.Quantitative)
	}
	if got.Qualitative != "산업 생태계의 지속 가능성 제고" {
		t.Errorf("unexpected qualitative %q", got.Qualitative)
	}
}

func TestParse_Idempotent(t *testing.T) {
	first := Parse(sampleAnalysis)
	second := Parse(sampleAnalysis)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results across calls, got %v then %v", first, second)
	}
}

func TestParse_NoHeadingsDegradesToZero(t *testing.T) {
	got := Parse("그냥 평문입니다. 헤더가 전혀 없습니다.\n- 불릿도 섹션 밖에 있음")

	want := AnalysisResult{Problems: []string{}, ShortTerm: []string{}, MidTerm: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected zero-value result, got %+v", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	got := Parse("")
	if got.Background != "" || len(got.Problems) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
	if got.Problems == nil || got.ShortTerm == nil || got.MidTerm == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestParse_EffectsHeadingVariants(t *testing.T) {
	md := "## 주요 효과\n### 정량\n- 매출 100억 원 증가 전망\n"
	got := Parse(md)
	if got.Quantitative != "매출 100억 원 증가 전망" {
		t.Errorf("expected 효과 heading to be accepted, got %q", got.Quantitative)
	}
}
