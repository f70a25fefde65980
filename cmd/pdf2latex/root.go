package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdf2latex/internal/assemble"
	"github.com/jackzampolin/pdf2latex/internal/config"
	"github.com/jackzampolin/pdf2latex/internal/pipeline"
	"github.com/jackzampolin/pdf2latex/internal/providers"
	"github.com/jackzampolin/pdf2latex/internal/render"
	"github.com/jackzampolin/pdf2latex/version"
)

var (
	cfgFile    string
	outputPath string
	dpi        int
	startPage  int
	endPage    int
	batchSize  int
)

var rootCmd = &cobra.Command{
	Use:   "pdf2latex <pdf-path>",
	Short: "Translate a French academic PDF into an English LaTeX document",
	Long: `pdf2latex renders each page of a French academic PDF as an image, sends it
to a vision model that extracts, translates, and typesets the content, and
concatenates the per-page LaTeX fragments into a single compilable document.

Requires ANTHROPIC_API_KEY in the environment. ANTHROPIC_MODEL optionally
overrides the model.

Examples:
  pdf2latex paper.pdf
  pdf2latex paper.pdf --output paper_en.tex --dpi 200
  pdf2latex paper.pdf --start-page 2 --end-page 9 --batch-size 4`,
	Args:    cobra.ExactArgs(1),
	Version: version.GitRelease,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Credential check happens before any work.
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		pdfPath := args[0]
		if _, err := os.Stat(pdfPath); err != nil {
			return fmt.Errorf("input file not found: %s", pdfPath)
		}

		out := outputPath
		if out == "" {
			out = assemble.DefaultOutputPath(pdfPath)
		}

		pages, err := render.New(logger).RenderAll(pdfPath, dpi)
		if err != nil {
			return err
		}

		end := endPage
		if end < 0 {
			end = len(pages) - 1
		}

		client := providers.NewClaude(providers.ClaudeConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})

		p := pipeline.New(pipeline.Config{
			Transcriber: client,
			Logger:      logger,
		})
		return p.Run(ctx, pages, pipeline.Options{
			StartPage: startPage,
			EndPage:   end,
			BatchSize: batchSize,
			Output:    out,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdf2latex/config.yaml)",
	)
	rootCmd.Flags().StringVar(
		&outputPath, "output", "", "output LaTeX file path (default: <input>_translated_en.tex)",
	)
	rootCmd.Flags().IntVar(&dpi, "dpi", 300, "DPI for page rasterization")
	rootCmd.Flags().IntVar(&startPage, "start-page", 0, "first page to translate (0-indexed)")
	rootCmd.Flags().IntVar(
		&endPage, "end-page", -1, "last page to translate (0-indexed, inclusive; default: last page)",
	)
	rootCmd.Flags().IntVar(
		&batchSize, "batch-size", 0, "pages per checkpoint batch (default: the whole range in one batch)",
	)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
