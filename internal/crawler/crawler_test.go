package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"khidi-briefing/internal/config"
)

func testConfig(origin string, boards ...config.Board) config.Config {
	return config.Config{
		SiteOrigin:       origin,
		Boards:           boards,
		UserAgent:        "test-agent",
		RowsPerBoard:     10,
		DetailFetchLimit: 5,
		BodyExcerptLimit: 5000,
		SummaryLimit:     200,
		FetchTimeout:     5 * time.Second,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func listingHTML(prefix string, rows int) string {
	var sb strings.Builder
	sb.WriteString("<table>")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, `<tr><td>%d</td><td><a href="/view/%s/%d">%s 게시글 제목 %d호</a></td><td></td><td>2026-03-%02d</td></tr>`,
			i, prefix, i, prefix, i, i+1)
	}
	sb.WriteString("</table>")
	return sb.String()
}

func TestCrawl_BoardOrderAndIsNew(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/board/a"):
			fmt.Fprint(w, listingHTML("알파", 2))
		case strings.HasPrefix(r.URL.Path, "/board/b"):
			fmt.Fprint(w, listingHTML("베타", 2))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL,
		config.Board{Name: "알파보드", URL: ts.URL + "/board/a"},
		config.Board{Name: "베타보드", URL: ts.URL + "/board/b"},
	)
	c := New(cfg, discardLogger(), nil)

	articles := c.Crawl(context.Background(), Options{})
	if len(articles) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(articles))
	}

	wantSources := []string{"알파보드", "알파보드", "베타보드", "베타보드"}
	for i, want := range wantSources {
		if articles[i].Source != want {
			t.Errorf("article %d: expected source %q, got %q", i, want, articles[i].Source)
		}
	}

	for i, a := range articles {
		if want := i < 3; a.IsNew != want {
			t.Errorf("article %d: expected isNew=%v, got %v", i, want, a.IsNew)
		}
	}

	if articles[0].Summary != summaryPlaceholder {
		t.Errorf("expected placeholder summary without detail, got %q", articles[0].Summary)
	}
}

func TestCrawl_FailingBoardIsIsolated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/board/down") {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, listingHTML("정상", 3))
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL,
		config.Board{Name: "장애보드", URL: ts.URL + "/board/down"},
		config.Board{Name: "정상보드", URL: ts.URL + "/board/up"},
	)
	c := New(cfg, discardLogger(), nil)

	articles := c.Crawl(context.Background(), Options{})
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles from the healthy board, got %d", len(articles))
	}
	for _, a := range articles {
		if a.Source != "정상보드" {
			t.Errorf("unexpected source %q", a.Source)
		}
	}
}

func TestCrawl_DetailEnrichment(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/board/"):
			fmt.Fprint(w, listingHTML("상세", 7))
		case strings.HasPrefix(r.URL.Path, "/view/"):
			fmt.Fprint(w, `<div class="view-content">첨부된 상세 본문 내용입니다. 바이오 분야 동향을 다룬다.</div><a href="/files/brief.pdf">첨부파일</a>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL, config.Board{Name: "브리프", URL: ts.URL + "/board/x"})
	c := New(cfg, discardLogger(), nil)

	articles := c.Crawl(context.Background(), Options{Detail: true})
	if len(articles) != 7 {
		t.Fatalf("expected 7 articles, got %d", len(articles))
	}

	// Only the first 5 get a detail fetch.
	for i := 0; i < 5; i++ {
		if articles[i].Content == "" {
			t.Errorf("article %d: expected detail content", i)
		}
		if articles[i].AttachmentURL != ts.URL+"/files/brief.pdf" {
			t.Errorf("article %d: unexpected attachment %q", i, articles[i].AttachmentURL)
		}
		if strings.Contains(articles[i].Summary, "불러오는") {
			t.Errorf("article %d: expected real summary, got %q", i, articles[i].Summary)
		}
	}
	for i := 5; i < 7; i++ {
		if articles[i].Content != "" {
			t.Errorf("article %d: expected no detail content beyond the limit", i)
		}
		if articles[i].Summary != summaryPlaceholder {
			t.Errorf("article %d: expected placeholder summary, got %q", i, articles[i].Summary)
		}
	}

	if articles[0].Category != "바이오헬스" {
		t.Errorf("expected body-driven category, got %q", articles[0].Category)
	}
	if articles[0].Tags.Layer != "브리프" || articles[0].Tags.Source != "KHIDI" {
		t.Errorf("unexpected tags %+v", articles[0].Tags)
	}
}

func TestCrawl_DetailCapIsPerCrawl(t *testing.T) {
	var mu sync.Mutex
	detailFetches := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/board/a"):
			fmt.Fprint(w, listingHTML("알파", 6))
		case strings.HasPrefix(r.URL.Path, "/board/b"):
			fmt.Fprint(w, listingHTML("베타", 6))
		case strings.HasPrefix(r.URL.Path, "/view/"):
			mu.Lock()
			detailFetches++
			mu.Unlock()
			fmt.Fprint(w, `<div class="view-content">상세 본문 내용입니다</div>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL,
		config.Board{Name: "알파보드", URL: ts.URL + "/board/a"},
		config.Board{Name: "베타보드", URL: ts.URL + "/board/b"},
	)
	c := New(cfg, discardLogger(), nil)

	articles := c.Crawl(context.Background(), Options{Detail: true})
	if len(articles) != 12 {
		t.Fatalf("expected 12 articles, got %d", len(articles))
	}

	// The budget spans the whole crawl: five fetches, all on the first board.
	if detailFetches != 5 {
		t.Errorf("expected 5 detail fetches total, got %d", detailFetches)
	}
	for i, a := range articles {
		if want := i < 5; (a.Content != "") != want {
			t.Errorf("article %d (%s): expected enriched=%v, got content %q", i, a.Source, want, a.Content)
		}
	}
}

func TestCrawl_AllBoardsFailReturnsEmptySlice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL,
		config.Board{Name: "보드1", URL: ts.URL + "/board/a"},
		config.Board{Name: "보드2", URL: ts.URL + "/board/b"},
	)
	c := New(cfg, discardLogger(), nil)

	articles := c.Crawl(context.Background(), Options{})
	if articles == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(articles) != 0 {
		t.Errorf("expected no articles, got %d", len(articles))
	}
}

type stubExtractor struct {
	text  string
	calls int
}

func (s *stubExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, nil
}

func TestCrawl_AttachmentFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/board/"):
			fmt.Fprint(w, listingHTML("공백", 1))
		case strings.HasPrefix(r.URL.Path, "/view/"):
			// No recognizable body, only an attachment link.
			fmt.Fprint(w, `<div class="unknown">본문</div><a href="/files/only.pdf">첨부</a>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	ex := &stubExtractor{text: "첨부 PDF에서 추출한 본문 텍스트"}
	cfg := testConfig(ts.URL, config.Board{Name: "공백보드", URL: ts.URL + "/board/x"})
	c := New(cfg, discardLogger(), ex)

	articles := c.Crawl(context.Background(), Options{Attachments: true})
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if ex.calls != 1 {
		t.Errorf("expected 1 extractor call, got %d", ex.calls)
	}
	if articles[0].Content != "첨부 PDF에서 추출한 본문 텍스트" {
		t.Errorf("expected attachment text as content, got %q", articles[0].Content)
	}
}
