package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"khidi-briefing/internal/analysis"
	"khidi-briefing/internal/models"
)

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles := s.store.List()
	jsonOK(w, map[string]any{
		"count":    len(articles),
		"articles": articles,
	})
}

// handleAddArticles merges crawled articles into the stack.
func (s *Server) handleAddArticles(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Articles []models.Article `json:"articles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "잘못된 요청 형식입니다.", http.StatusBadRequest)
		return
	}
	if len(req.Articles) == 0 {
		jsonError(w, "추가할 기사가 없습니다.", http.StatusBadRequest)
		return
	}

	added := s.store.Add(req.Articles)
	jsonOK(w, map[string]any{
		"added": added,
		"count": len(s.store.List()),
	})
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")
	if !s.store.Remove(id) {
		jsonError(w, "기사를 찾을 수 없습니다.", http.StatusNotFound)
		return
	}
	jsonOK(w, map[string]any{"deleted": id})
}

func (s *Server) handleClearArticles(w http.ResponseWriter, r *http.Request) {
	s.store.Clear()
	jsonOK(w, map[string]any{"count": 0})
}

// handleSaveAnalysis attaches a generated analysis to a stacked article.
// An article keeps its first analysis; repeat saves are rejected.
func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")

	var req struct {
		Analysis string `json:"analysis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Analysis == "" {
		jsonError(w, "저장할 분석 내용이 없습니다.", http.StatusBadRequest)
		return
	}

	if err := s.store.SaveAnalysis(id, req.Analysis); err != nil {
		if _, ok := s.store.Get(id); !ok {
			jsonError(w, "기사를 찾을 수 없습니다.", http.StatusNotFound)
			return
		}
		jsonError(w, "이미 저장된 분석이 있습니다.", http.StatusConflict)
		return
	}
	jsonOK(w, map[string]any{"saved": id})
}

// handleBriefing parses a saved analysis into the study-guide and proposal
// views plus rendered HTML.
func (s *Server) handleBriefing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")

	article, ok := s.store.Get(id)
	if !ok {
		jsonError(w, "기사를 찾을 수 없습니다.", http.StatusNotFound)
		return
	}
	raw, ok := s.store.Analysis(id)
	if !ok {
		jsonError(w, "저장된 분석이 없습니다.", http.StatusNotFound)
		return
	}

	jsonOK(w, map[string]any{
		"article":  article,
		"analysis": analysis.Parse(raw),
		"guide":    analysis.BuildStudyGuide(article.Summary, raw),
		"template": analysis.ParseTemplate(raw, article.Title),
	})
}

func (s *Server) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")
	bookmarked, err := s.store.ToggleBookmark(id)
	if err != nil {
		jsonError(w, "기사를 찾을 수 없습니다.", http.StatusNotFound)
		return
	}
	jsonOK(w, map[string]any{
		"id":         id,
		"bookmarked": bookmarked,
	})
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	marked := s.store.Bookmarked()
	jsonOK(w, map[string]any{
		"count":    len(marked),
		"articles": marked,
	})
}
