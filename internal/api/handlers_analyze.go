package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"khidi-briefing/internal/gemini"
)

// minAnalyzeContent is the shortest article body worth sending upstream.
const minAnalyzeContent = 50

type analyzeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	APIKey   string `json:"apiKey"`
	Category string `json:"category"`
	Layer    string `json:"layer"`
}

// handleAnalyze generates a structured analysis for one article. Hiring
// announcements get the job-posting prompt, everything else the briefing
// prompt.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "잘못된 요청 형식입니다.", http.StatusBadRequest)
		return
	}

	length := utf8.RuneCountInString(req.Content)
	if length < minAnalyzeContent {
		jsonError(w, fmt.Sprintf("분석할 내용이 너무 짧습니다. (현재 %d자, 최소 %d자 필요)", length, minAnalyzeContent), http.StatusBadRequest)
		return
	}

	apiKey := s.resolveAPIKey(req.APIKey)
	if apiKey == "" {
		jsonError(w, "Gemini API 키가 설정되지 않았습니다.", http.StatusBadRequest)
		return
	}

	kind := "briefing"
	if req.Layer == "채용정보" || req.Category == "채용분석" {
		kind = "job"
	}

	prompt := gemini.PromptFor(req.Title, req.Content, req.Category, req.Layer)
	analysis, err := s.generator.Generate(r.Context(), apiKey, prompt, gemini.AnalyzeMaxTokens)
	if err != nil {
		s.log.Error("analysis failed", "title", req.Title, "error", err)
		jsonError(w, analyzeErrorMessage(err), gemini.StatusFor(err))
		return
	}

	jsonOK(w, map[string]any{
		"analysis":   analysis,
		"analyzedAt": time.Now().UTC().Format(time.RFC3339),
		"type":       kind,
	})
}

// handlePredict answers the future-roles outlook.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	apiKey := s.resolveAPIKey(r.URL.Query().Get("apiKey"))
	if apiKey == "" {
		jsonError(w, "Gemini API 키가 설정되지 않았습니다.", http.StatusBadRequest)
		return
	}

	prediction, err := s.generator.Generate(r.Context(), apiKey, gemini.FutureRolesPrompt(), gemini.PredictMaxTokens)
	if err != nil {
		s.log.Error("prediction failed", "error", err)
		jsonError(w, analyzeErrorMessage(err), gemini.StatusFor(err))
		return
	}

	jsonOK(w, map[string]any{
		"prediction":  prediction,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// resolveAPIKey prefers the server-configured key over a request-scoped one.
func (s *Server) resolveAPIKey(requestKey string) string {
	if s.cfg.GeminiAPIKey != "" {
		return s.cfg.GeminiAPIKey
	}
	return requestKey
}

func analyzeErrorMessage(err error) string {
	switch gemini.StatusFor(err) {
	case http.StatusUnauthorized:
		return "API 키가 유효하지 않습니다. 키를 확인해 주세요."
	case http.StatusTooManyRequests:
		return "API 사용량 한도를 초과했습니다. 잠시 후 다시 시도해 주세요."
	case http.StatusNotFound:
		return "요청한 모델을 찾을 수 없습니다."
	case http.StatusBadGateway:
		return "AI 응답이 비어 있습니다. 다시 시도해 주세요."
	default:
		return "분석 중 오류가 발생했습니다."
	}
}
