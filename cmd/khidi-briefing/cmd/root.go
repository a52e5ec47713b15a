package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"khidi-briefing/internal/config"
)

var (
	verbose bool
	log     *slog.Logger
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "khidi-briefing",
	Short: "KHIDI board crawler and briefing analysis service",
	Long: `khidi-briefing crawls KHIDI health-industry bulletin boards, classifies
the articles, and generates structured policy briefings via Gemini.

Commands:
  serve   Start the HTTP API server
  crawl   Run one crawl and print the articles as JSON`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func initConfig() {
	// A local .env is a convenience for development; absence is normal.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
}
