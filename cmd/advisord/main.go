package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finadvisor/finadvisor/internal/cache"
	"github.com/finadvisor/finadvisor/internal/catalog"
	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/llm/groq"
	"github.com/finadvisor/finadvisor/internal/ocr"
	"github.com/finadvisor/finadvisor/internal/pipeline"
	"github.com/finadvisor/finadvisor/internal/recommend"
	"github.com/finadvisor/finadvisor/internal/server"
	"github.com/finadvisor/finadvisor/internal/upload"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := upload.NewStore(cfg.Upload.Dir, logger)
	if err != nil {
		logger.Error("create upload store", "error", err)
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

	var analysisCache cache.AnalysisCache = cache.Noop{}
	if cfg.Cache.RedisAddr != "" {
		rc := cache.NewRedis(cfg.Cache.RedisAddr, logger)
		defer func() {
			if cerr := rc.Close(); cerr != nil {
				logger.Warn("close redis", "error", cerr)
			}
		}()
		analysisCache = rc
		logger.Info("analysis cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL.String())
	}

	p := pipeline.New(store, extractor, client, analysisCache, cfg.Cache.TTL, logger)
	engine := recommend.NewEngine(catalog.Default())
	srv := server.New(engine, p, client, cfg.Server.UploadTimeout, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.UploadTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("http serve", "error", err)
		os.Exit(1)
	case <-quit:
		logger.Info("shutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
