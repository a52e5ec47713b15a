package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"khidi-briefing/internal/attachment"
	"khidi-briefing/internal/crawler"
)

var (
	crawlDetail bool
	crawlAttach bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Run one crawl and print the articles as JSON",
	Long: `Run one crawl of all configured boards and print the articles as JSON.

Example:
  khidi-briefing crawl --detail`,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().BoolVar(&crawlDetail, "detail", false, "fetch article bodies for the leading rows")
	crawlCmd.Flags().BoolVar(&crawlAttach, "attach", false, "extract attachment text for articles without a body")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	extractor := attachment.New(cfg.AttachmentCacheDir, cfg.AttachmentMaxPages, cfg.UserAgent)
	c := crawler.New(cfg, log, extractor)

	articles := c.Crawl(cmd.Context(), crawler.Options{
		Detail:      crawlDetail,
		Attachments: crawlAttach,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}
