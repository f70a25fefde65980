package providers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackzampolin/pdf2latex/internal/encode"
)

const MockName = "mock"

// Mock is a Transcriber for testing.
type Mock struct {
	// Configurable behavior
	ResponseText string                     // returned for every page unless ResponseFunc is set
	ResponseFunc func(pageIndex int) string // per-page response override
	FailPages    map[int]error              // page index -> error to return
	Latency      time.Duration

	// State
	callCount atomic.Int64
}

// NewMock creates a mock transcriber with sensible defaults.
func NewMock() *Mock {
	return &Mock{ResponseText: "mock fragment"}
}

// Name returns the client identifier.
func (m *Mock) Name() string { return MockName }

// Calls reports how many Transcribe calls have been made.
func (m *Mock) Calls() int64 { return m.callCount.Load() }

// Transcribe returns the configured response, or the configured error for
// pages listed in FailPages.
func (m *Mock) Transcribe(ctx context.Context, page encode.EncodedPage, pageIndex int) (string, error) {
	m.callCount.Add(1)

	if m.Latency > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Latency):
		}
	}

	if err, ok := m.FailPages[pageIndex]; ok {
		return "", err
	}
	if m.ResponseFunc != nil {
		return m.ResponseFunc(pageIndex), nil
	}
	return fmt.Sprintf("%s (page %d)", m.ResponseText, pageIndex+1), nil
}
