package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"khidi-briefing/internal/config"
	"khidi-briefing/internal/crawler"
	"khidi-briefing/internal/models"
	"khidi-briefing/internal/stack"
)

// ArticleCrawler produces articles from the configured boards.
type ArticleCrawler interface {
	Crawl(ctx context.Context, opts crawler.Options) []models.Article
}

// Generator produces text from a prompt via the upstream model.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string, maxTokens int) (string, error)
}

// TextExtractor turns an attachment URL into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	crawler   ArticleCrawler
	generator Generator
	extractor TextExtractor
	store     *stack.Store
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(c ArticleCrawler, g Generator, e TextExtractor, store *stack.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		crawler:   c,
		generator: g,
		extractor: e,
		store:     store,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/crawl", s.handleCrawl)

	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/analyze", s.handlePredict)

	r.Get("/api/articles", s.handleListArticles)
	r.Post("/api/articles", s.handleAddArticles)
	r.Delete("/api/articles", s.handleClearArticles)
	r.Delete("/api/articles/{articleID}", s.handleDeleteArticle)
	r.Put("/api/articles/{articleID}/analysis", s.handleSaveAnalysis)
	r.Get("/api/articles/{articleID}/briefing", s.handleBriefing)
	r.Post("/api/articles/{articleID}/bookmark", s.handleToggleBookmark)
	r.Get("/api/bookmarks", s.handleListBookmarks)

	r.Post("/api/attachments/extract", s.handleExtractAttachment)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonOK(w http.ResponseWriter, payload map[string]any) {
	payload["success"] = true
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
