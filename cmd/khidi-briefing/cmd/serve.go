package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"khidi-briefing/internal/api"
	"khidi-briefing/internal/attachment"
	"khidi-briefing/internal/crawler"
	"khidi-briefing/internal/gemini"
	"khidi-briefing/internal/stack"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

Endpoints include /api/crawl for board crawling, /api/analyze for Gemini
analysis, and /api/articles for the article stack.

Example:
  khidi-briefing serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	extractor := attachment.New(cfg.AttachmentCacheDir, cfg.AttachmentMaxPages, cfg.UserAgent)
	crawl := crawler.New(cfg, log, extractor)
	generator := gemini.NewClient(cfg.GeminiModel)

	store := stack.New(cfg.StackPath, cfg.StackCapacity)
	if err := store.Load(); err != nil {
		log.Warn("could not restore article stack", "error", err)
	}

	srv := api.NewServer(crawl, generator, extractor, store, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting khidi-briefing", "port", cfg.Port, "boards", len(cfg.Boards))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
