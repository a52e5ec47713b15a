package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"khidi-briefing/internal/attachment"
)

// handleExtractAttachment downloads one attachment and returns its text.
func (s *Server) handleExtractAttachment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		jsonError(w, "첨부파일 URL이 필요합니다.", http.StatusBadRequest)
		return
	}

	text, err := s.extractor.ExtractText(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, attachment.ErrUnsupported) {
			jsonError(w, "지원하지 않는 첨부파일 형식입니다. (PDF, DOCX만 지원)", http.StatusUnsupportedMediaType)
			return
		}
		s.log.Error("attachment extraction failed", "url", req.URL, "error", err)
		jsonError(w, "첨부파일을 처리하지 못했습니다.", http.StatusBadGateway)
		return
	}

	jsonOK(w, map[string]any{
		"url":  req.URL,
		"text": text,
	})
}
