// Package providers contains clients for the hosted vision models that
// perform page transcription.
package providers

import (
	"context"

	"github.com/jackzampolin/pdf2latex/internal/encode"
)

// Transcriber turns one encoded page into a LaTeX fragment.
//
// Implementations make exactly one attempt per call and return failures as
// errors; deciding what a failed page means (abort, substitute, skip) is the
// caller's job, not the client's.
type Transcriber interface {
	// Transcribe sends the page image to the model and returns the LaTeX
	// fragment it produced. pageIndex is 0-based; implementations report it
	// 1-based to the model.
	Transcribe(ctx context.Context, page encode.EncodedPage, pageIndex int) (string, error)

	// Name returns the client identifier (e.g., "claude").
	Name() string
}
