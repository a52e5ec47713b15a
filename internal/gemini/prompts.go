package gemini

import (
	"fmt"

	"khidi-briefing/internal/models"
)

// promptContentLimit caps how much article body is sent upstream.
const promptContentLimit = 10000

// Token budgets per prompt kind.
const (
	AnalyzeMaxTokens = 8192
	PredictMaxTokens = 4096
)

// BriefingPrompt asks for an in-basket style policy analysis of an article.
// The requested structure matches what the analysis parser expects.
func BriefingPrompt(title, content string) string {
	return fmt.Sprintf(`당신은 보건산업 정책 전문가입니다. 아래 기사를 공직 역량평가의 서류함기법(In-Basket) 과제 관점에서 분석해 주세요.

제목: %s

내용:
%s

다음 구조의 마크다운으로 작성해 주세요.

### 현황
핵심 현황을 2~4문장으로 정리합니다.

### 문제점
- 주요 문제점을 불릿으로 정리합니다.

### 대응 방안
#### 단기 방안
- 즉시 실행 가능한 방안

#### 중기 방안
- 제도 개선 등 중기 방안

### 기대 효과
#### 정량적 효과
- 수치로 표현되는 효과

#### 정성적 효과
- 질적 개선 효과`, title, models.TruncateRunes(content, promptContentLimit))
}

// JobPostingPrompt asks for an analysis of a hiring announcement: what the
// posting reveals about the organization's priorities and how to prepare.
func JobPostingPrompt(title, content string) string {
	return fmt.Sprintf(`당신은 보건산업 채용 분석 전문가입니다. 아래 채용 공고를 분석해 주세요.

제목: %s

내용:
%s

다음 구조의 마크다운으로 작성해 주세요.

### 현황
이 채용이 반영하는 조직과 산업의 현황을 2~4문장으로 정리합니다.

### 문제점
- 해당 직무가 해결해야 할 과제를 불릿으로 정리합니다.

### 대응 방안
#### 단기 방안
- 지원자가 즉시 준비할 수 있는 것

#### 중기 방안
- 경력 설계 관점의 준비 사항

### 기대 효과
#### 정량적 효과
- 수치로 표현되는 효과

#### 정성적 효과
- 질적 효과`, title, models.TruncateRunes(content, promptContentLimit))
}

// FutureRolesPrompt asks for a 2026 outlook on emerging health-industry roles.
func FutureRolesPrompt() string {
	return `당신은 보건산업 인력 정책 전문가입니다. 2026년 국내 보건산업에서 수요가 커질 직무 5개를 예측해 주세요.

각 직무마다 다음을 마크다운으로 작성해 주세요.
- 직무명과 한 줄 정의
- 수요가 커지는 배경 (정책, 기술, 시장 변화)
- 필요한 핵심 역량 3가지
- 준비 방법

불확실한 전망은 전망임을 명시하고, 과장 없이 작성해 주세요.`
}

// PromptFor picks the analysis prompt by article classification. Hiring
// announcements get the job-posting treatment, everything else the briefing.
func PromptFor(title, content, category, layer string) string {
	if layer == "채용정보" || category == "채용분석" {
		return JobPostingPrompt(title, content)
	}
	return BriefingPrompt(title, content)
}
