// Package pipeline drives page transcription across a validated page range,
// checkpointing batch output along the way.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jackzampolin/pdf2latex/internal/assemble"
	"github.com/jackzampolin/pdf2latex/internal/encode"
	"github.com/jackzampolin/pdf2latex/internal/providers"
	"github.com/jackzampolin/pdf2latex/internal/render"
)

// ErrInvalidRange reports a requested page range outside the rendered
// document. It is returned before any model call is made.
var ErrInvalidRange = errors.New("page range out of bounds")

// DefaultInterval is the minimum spacing between consecutive model requests.
// It is a fixed-rate throttle against the remote rate limiter, not adaptive
// backoff.
const DefaultInterval = time.Second

// Config wires the pipeline's collaborators.
type Config struct {
	Transcriber providers.Transcriber
	Logger      *slog.Logger

	// Interval is the minimum time between consecutive page requests.
	// Zero means DefaultInterval.
	Interval time.Duration
}

// Options select what a single run processes and where output goes.
type Options struct {
	StartPage int    // 0-based, inclusive
	EndPage   int    // 0-based, inclusive
	BatchSize int    // pages per checkpoint batch; <=0 means the whole range
	Output    string // final .tex path
}

// Pipeline processes pages one at a time, strictly in ascending page order.
type Pipeline struct {
	transcriber providers.Transcriber
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// New creates a pipeline around the given transcriber.
func New(cfg Config) *Pipeline {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		transcriber: cfg.Transcriber,
		limiter:     rate.NewLimiter(rate.Every(interval), 1),
		logger:      logger,
	}
}

// batchRange is a contiguous [start,end) window of offsets into the selected
// page slice. Batches only control checkpoint boundaries; they never reorder
// pages.
type batchRange struct {
	start int
	end   int
}

// partition splits n selected pages into consecutive batches of size.
// size <= 0 or >= n yields a single batch covering everything.
func partition(n, size int) []batchRange {
	if size <= 0 || size > n {
		size = n
	}
	var batches []batchRange
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		batches = append(batches, batchRange{start: start, end: end})
	}
	return batches
}

// errorFragment synthesizes the stand-in fragment for a failed page.
// pageNum is 1-based.
func errorFragment(pageNum int, err error) string {
	return fmt.Sprintf("%% Error processing page %d\n%% %v\n\n", pageNum, err)
}

// Run transcribes pages[opts.StartPage..opts.EndPage] and writes the
// assembled document to opts.Output. When more than one batch is processed,
// each batch's fragments are also persisted to a batch-suffixed checkpoint
// file as they complete; checkpoints are left on disk after the run.
//
// Per-page transcription failures are absorbed as error-comment fragments
// and never stop the run. Range validation, encoder faults, file writes,
// and context cancellation are fatal.
func (p *Pipeline) Run(ctx context.Context, pages []render.Page, opts Options) error {
	if opts.StartPage < 0 || opts.StartPage >= len(pages) {
		return fmt.Errorf("%w: start page %d (document has pages 0-%d)",
			ErrInvalidRange, opts.StartPage, len(pages)-1)
	}
	if opts.EndPage < opts.StartPage || opts.EndPage >= len(pages) {
		return fmt.Errorf("%w: end page %d (valid range %d-%d)",
			ErrInvalidRange, opts.EndPage, opts.StartPage, len(pages)-1)
	}

	selected := pages[opts.StartPage : opts.EndPage+1]
	batches := partition(len(selected), opts.BatchSize)

	log := p.logger.With("run_id", uuid.New().String())
	log.Info("starting run",
		"pages", len(selected),
		"batches", len(batches),
		"provider", p.transcriber.Name(),
		"output", opts.Output)

	allFragments := make([]assemble.Fragment, 0, len(selected))

	for bi, b := range batches {
		log.Info("processing batch",
			"batch", bi+1, "of", len(batches),
			"first_page", opts.StartPage+b.start+1,
			"last_page", opts.StartPage+b.end)

		batchFragments := make([]assemble.Fragment, 0, b.end-b.start)
		for _, page := range selected[b.start:b.end] {
			if err := p.limiter.Wait(ctx); err != nil {
				return err
			}
			frag, err := p.transcribePage(ctx, page)
			if err != nil {
				return err
			}
			batchFragments = append(batchFragments, frag)
			allFragments = append(allFragments, frag)
		}

		// Checkpoints only make sense when the run spans several batches;
		// they are kept after the run and not reconciled against the final
		// output.
		if len(batches) > 1 {
			checkpoint := assemble.BatchOutputPath(opts.Output, bi+1)
			if err := writeDocument(checkpoint, batchFragments); err != nil {
				return fmt.Errorf("failed to write batch checkpoint: %w", err)
			}
			log.Info("batch checkpoint saved", "path", checkpoint)
		}
	}

	if err := writeDocument(opts.Output, allFragments); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("run complete", "path", opts.Output, "fragments", len(allFragments))
	return nil
}

// transcribePage encodes and transcribes one page. A transcription failure
// becomes an error-comment fragment; only encoder faults and context
// cancellation propagate.
func (p *Pipeline) transcribePage(ctx context.Context, page render.Page) (assemble.Fragment, error) {
	encoded, err := encode.PNG(page.Image)
	if err != nil {
		return assemble.Fragment{}, err
	}

	text, err := p.transcriber.Transcribe(ctx, encoded, page.Index)
	if err != nil {
		if ctx.Err() != nil {
			return assemble.Fragment{}, ctx.Err()
		}
		p.logger.Error("page transcription failed", "page", page.Index+1, "err", err)
		text = errorFragment(page.Index+1, err)
	}
	return assemble.Fragment{Page: page.Index, Content: text}, nil
}

func writeDocument(path string, fragments []assemble.Fragment) error {
	return os.WriteFile(path, []byte(assemble.Document(fragments)), 0o644)
}
