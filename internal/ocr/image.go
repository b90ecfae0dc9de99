package ocr

import (
	"context"

	"github.com/finadvisor/finadvisor/constants"
)

// extractImage runs a single recognition pass over the image. Tesseract
// normalizes the color mode itself, so no pre-processing is needed.
func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	txt, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return Result{SourceType: constants.IMAGE}, err
	}
	return Result{
		Text:       txt,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
	}, nil
}
