package crawler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"khidi-briefing/internal/config"
	"khidi-briefing/internal/models"
)

// maxConcurrentBoards bounds the board fan-out.
const maxConcurrentBoards = 4

// newArticleCount marks the first N articles of a crawl as new.
const newArticleCount = 3

// summaryPlaceholder fills Summary when no detail body was fetched.
const summaryPlaceholder = "내용을 불러오는 중..."

// TextExtractor turns an attachment URL into plain text. Implemented by the
// attachment package; nil disables attachment enrichment.
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

// Options selects the optional enrichment steps of a crawl.
type Options struct {
	// Detail fetches the leading article bodies, capped per crawl.
	Detail bool
	// Attachments extracts attachment text for articles without a body.
	// Implies Detail.
	Attachments bool
}

// Crawler fetches the configured boards and assembles articles.
type Crawler struct {
	cfg       config.Config
	log       *slog.Logger
	client    *client
	extractor TextExtractor
	now       func() time.Time
}

func New(cfg config.Config, log *slog.Logger, extractor TextExtractor) *Crawler {
	return &Crawler{
		cfg:       cfg,
		log:       log,
		client:    newClient(cfg.FetchTimeout, cfg.UserAgent),
		extractor: extractor,
		now:       time.Now,
	}
}

// Crawl fetches every configured board concurrently and returns the combined
// article list in board order, each board's rows in page order. A failing
// board contributes an empty slice; Crawl itself never fails.
func (c *Crawler) Crawl(ctx context.Context, opts Options) []models.Article {
	if opts.Attachments {
		opts.Detail = true
	}

	boards := c.cfg.Boards
	perBoard := make([][]models.ArticleStub, len(boards))

	sem := make(chan struct{}, maxConcurrentBoards)
	var wg sync.WaitGroup
	for i, board := range boards {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, board config.Board) {
			defer wg.Done()
			defer func() { <-sem }()
			perBoard[i] = c.crawlBoard(ctx, board)
		}(i, board)
	}
	wg.Wait()

	var stubs []models.ArticleStub
	for _, batch := range perBoard {
		stubs = append(stubs, batch...)
	}

	// The detail budget is per crawl, not per board: only the leading stubs
	// of the ordered flatten get a second fetch.
	articles := make([]models.Article, 0, len(stubs))
	for i, stub := range stubs {
		var detail models.ArticleDetail
		if opts.Detail && i < c.cfg.DetailFetchLimit {
			detail = c.fetchDetail(ctx, stub)
			if opts.Attachments && detail.Content == "" && detail.AttachmentURL != "" {
				detail.Content = c.extractAttachment(ctx, detail.AttachmentURL)
			}
		}
		articles = append(articles, c.assemble(stub, detail))
	}
	for i := range articles {
		articles[i].IsNew = i < newArticleCount
	}
	return articles
}

// crawlBoard fetches and parses one listing page.
func (c *Crawler) crawlBoard(ctx context.Context, board config.Board) []models.ArticleStub {
	log := c.log.With("board", board.Name)

	doc, err := c.client.fetchDocument(ctx, board.URL)
	if err != nil {
		log.Warn("board fetch failed", "error", err)
		return nil
	}

	stubs := parseBoard(doc, board.Name, c.cfg.SiteOrigin, c.cfg.RowsPerBoard, c.now())
	log.Info("board parsed", "rows", len(stubs))
	return stubs
}

func (c *Crawler) fetchDetail(ctx context.Context, stub models.ArticleStub) models.ArticleDetail {
	doc, err := c.client.fetchDocument(ctx, stub.URL)
	if err != nil {
		c.log.Warn("detail fetch failed", "board", stub.SourceBoard, "url", stub.URL, "error", err)
		return models.ArticleDetail{}
	}
	return parseDetail(doc, c.cfg.SiteOrigin, c.cfg.BodyExcerptLimit)
}

func (c *Crawler) extractAttachment(ctx context.Context, url string) string {
	if c.extractor == nil {
		return ""
	}
	text, err := c.extractor.ExtractText(ctx, url)
	if err != nil {
		c.log.Warn("attachment extraction failed", "url", url, "error", err)
		return ""
	}
	return models.TruncateRunes(text, c.cfg.BodyExcerptLimit)
}

func (c *Crawler) assemble(stub models.ArticleStub, detail models.ArticleDetail) models.Article {
	summary := summaryPlaceholder
	if detail.Content != "" {
		summary = models.TruncateRunes(detail.Content, c.cfg.SummaryLimit)
	}
	category := Categorize(stub.Title, detail.Content)
	return models.Article{
		ID:            stub.ID,
		Source:        stub.SourceBoard,
		Date:          stub.Date,
		Title:         stub.Title,
		Summary:       summary,
		Link:          stub.URL,
		Category:      category,
		Content:       detail.Content,
		AttachmentURL: detail.AttachmentURL,
		Tags: models.Tags{
			Type:     "브리핑",
			Category: category,
			Layer:    stub.SourceBoard,
			Region:   "국내",
			Source:   "KHIDI",
		},
	}
}
