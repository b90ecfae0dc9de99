// Package pipeline sequences document intake, text extraction, and analysis.
// Each upload is handled end to end in a single pass: no retries, no partial
// results, exactly one terminal outcome per request.
package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/finadvisor/finadvisor/constants"
	"github.com/finadvisor/finadvisor/internal/cache"
	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/llm"
	"github.com/finadvisor/finadvisor/internal/ocr"
	"github.com/finadvisor/finadvisor/internal/upload"
)

// TextExtractor is the extraction seam; satisfied by *ocr.Extractor.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
}

// Upload is one incoming document: the declared filename plus its bytes.
type Upload struct {
	Filename string
	Content  io.Reader
}

type Pipeline struct {
	store     *upload.Store
	extractor TextExtractor
	analyzer  llm.Analyzer
	cache     cache.AnalysisCache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

func New(store *upload.Store, extractor TextExtractor, analyzer llm.Analyzer, c cache.AnalysisCache, cacheTTL time.Duration, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = cache.Noop{}
	}
	return &Pipeline{
		store:     store,
		extractor: extractor,
		analyzer:  analyzer,
		cache:     c,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Run executes the full pipeline for one upload:
// Received -> Saved -> Extracting -> Extracted -> Analyzing -> Completed,
// failing out of any stage with a stage-tagged error. The scratch file is
// removed whatever the outcome.
func (p *Pipeline) Run(ctx context.Context, up Upload) (llm.Analysis, error) {
	stage := constants.StageReceived

	if up.Content == nil || strings.TrimSpace(up.Filename) == "" {
		return llm.Analysis{}, common.Errorf(common.KindNoFile, "no file provided")
	}

	// Format is checked before anything touches the disk, so unsupported
	// uploads never reach extraction.
	saved, err := p.store.Save(up.Filename, up.Content)
	if err != nil {
		p.fail(stage, up.Filename, err)
		return llm.Analysis{}, err
	}
	defer saved.Remove()
	p.logger.Info("pipeline.saved", "token", saved.Token, "ext", saved.Ext, "size", saved.Size)

	stage = constants.StageExtracting
	res, err := p.extractor.Extract(ctx, saved.Path)
	if err != nil {
		p.fail(stage, up.Filename, err)
		return llm.Analysis{}, err
	}
	stage = constants.StageExtracted
	p.logger.Info("pipeline.extracted",
		"token", saved.Token,
		"method", res.Method,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)

	text := strings.TrimSpace(res.Text)
	if text == "" {
		err := common.Errorf(common.KindEmptyContent, "no readable text found in the file")
		p.fail(stage, up.Filename, err)
		return llm.Analysis{}, err
	}

	stage = constants.StageAnalyzing
	if raw, ok := p.cache.Get(ctx, saved.HashHex); ok {
		var cached llm.Analysis
		if err := json.Unmarshal(raw, &cached); err == nil {
			p.logger.Info("pipeline.analysis_cache_hit", "token", saved.Token, "hash", saved.HashHex)
			return cached, nil
		}
		p.logger.Warn("pipeline.analysis_cache_corrupt", "hash", saved.HashHex)
	}

	analysis, raw, err := p.analyzer.Analyze(ctx, text)
	if err != nil {
		p.fail(stage, up.Filename, err)
		return llm.Analysis{}, err
	}
	p.cache.Set(ctx, saved.HashHex, raw, p.cacheTTL)

	p.logger.Info("pipeline.completed", "token", saved.Token, "document_type", analysis.DocumentType)
	return analysis, nil
}

func (p *Pipeline) fail(stage constants.Stage, filename string, err error) {
	p.logger.Error("pipeline.failed",
		"stage", string(stage),
		"filename", filename,
		"kind", string(common.KindOf(err)),
		"error", err,
	)
}
