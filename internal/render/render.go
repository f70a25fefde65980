// Package render rasterizes PDF pages into images for transcription.
package render

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrEmptyDocument reports a PDF with no renderable pages.
var ErrEmptyDocument = errors.New("document has no pages")

// Page is a single rasterized PDF page.
type Page struct {
	Index int // 0-based position in the document
	Image image.Image
}

// Renderer rasterizes PDF documents at a fixed DPI.
type Renderer struct {
	logger *slog.Logger
}

// New creates a renderer. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// PageCount reports the number of pages without rasterizing anything.
// It also serves as a structural sanity check on the document before the
// rendering engine touches it.
func PageCount(pdfPath string) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return count, nil
}

// RenderAll rasterizes every page of the document at the given DPI, in page
// order. On any open or rasterize failure it returns no pages at all, never
// a partial document. Only scaling is applied; no rotation or cropping.
func (r *Renderer) RenderAll(pdfPath string, dpi int) ([]Page, error) {
	if _, err := PageCount(pdfPath); err != nil {
		return nil, err
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	count := doc.NumPage()
	if count == 0 {
		return nil, ErrEmptyDocument
	}

	r.logger.Info("extracting pages as images", "pages", count, "dpi", dpi)

	pages := make([]Page, 0, count)
	for i := 0; i < count; i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}
		pages = append(pages, Page{Index: i, Image: img})
	}

	return pages, nil
}
