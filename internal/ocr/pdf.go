package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/finadvisor/finadvisor/constants"
	"github.com/finadvisor/finadvisor/internal/common"
)

// readPDFPageCount opens the PDF with pdfcpu to validate it and read its
// page count. Overridable in tests, where no real PDF exists.
var readPDFPageCount = func(path string) (int, error) {
	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return 0, common.NewError(common.KindExtraction, "cannot open pdf", err)
	}
	return pdfCtx.PageCount, nil
}

// extractPDF rasterizes at most the first MaxPages pages and recognizes each
// one, concatenating page texts in page order separated by a newline. Pages
// past the cap are never rendered. A render or OCR failure on any page aborts
// the whole extraction; there is no partial-page salvage.
func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	total, err := readPDFPageCount(path)
	if err != nil {
		return Result{SourceType: constants.PDF}, err
	}
	pages := total
	if pages > e.cfg.MaxPages {
		pages = e.cfg.MaxPages
	}
	if pages == 0 {
		return Result{SourceType: constants.PDF}, common.Errorf(common.KindExtraction, "pdf has no pages")
	}

	tmpDir, err := os.MkdirTemp("", "advisor-pp-*")
	if err != nil {
		return Result{SourceType: constants.PDF}, common.NewError(common.KindExtraction, "create raster dir", err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("ocr.pdf.cleanup_failed", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -f 1 -l <pages> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", e.cfg.DPI),
		"-f", "1", "-l", fmt.Sprintf("%d", pages),
		"-png", path, prefix)
	if err != nil {
		return Result{SourceType: constants.PDF}, common.NewError(common.KindExtraction, "pdf render failed: "+clip(string(errb), 512), err)
	}

	// pdftoppm names outputs prefix-1.png, prefix-2.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) != pages {
		return Result{SourceType: constants.PDF}, common.Errorf(common.KindExtraction, "rendered %d of %d pages", len(matches), pages)
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			return Result{SourceType: constants.PDF}, err
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}

	return Result{
		Text:       b.String(),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
	}, nil
}
