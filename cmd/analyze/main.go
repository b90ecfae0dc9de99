// Command analyze runs the document pipeline on a local file and prints the
// resulting analysis as JSON. Useful for checking OCR and model behavior
// without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/finadvisor/finadvisor/internal/cache"
	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/llm/groq"
	"github.com/finadvisor/finadvisor/internal/ocr"
	"github.com/finadvisor/finadvisor/internal/pipeline"
	"github.com/finadvisor/finadvisor/internal/upload"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "analyze <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("open file", "path", path, "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = f.Close()
	}()

	store, err := upload.NewStore(os.TempDir(), logger)
	if err != nil {
		logger.Error("create scratch store", "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	client := groq.NewClient(groq.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	p := pipeline.New(store, extractor, client, cache.Noop{}, 0, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.UploadTimeout)
	defer cancel()

	start := time.Now()
	analysis, err := p.Run(ctx, pipeline.Upload{Filename: filepath.Base(path), Content: f})
	if err != nil {
		logger.Error("analysis failed",
			"kind", string(common.KindOf(err)),
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(analysis, "", "  ")
	fmt.Println(string(out))
}
