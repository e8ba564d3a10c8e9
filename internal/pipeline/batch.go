package pipeline

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/ocr"
)

// Batch processes multiple OCR responses with per-item failure isolation.
// One item panicking or degrading must not abort the rest; its outcome is
// recorded and processing continues. Results always come back ordered by
// input index so callers can correlate them with their image list.
type Batch struct {
	parser Parser
	jobs   int
}

// NewBatch creates a batch runner over the given parser. jobs caps how many
// items run concurrently; values below 1 mean sequential processing.
func NewBatch(parser Parser, jobs int) *Batch {
	if jobs < 1 {
		jobs = 1
	}
	return &Batch{parser: parser, jobs: jobs}
}

// Process runs every item through the parser and aggregates per-item
// outcomes. Items are independent and side effect free, so they fan out
// across at most b.jobs goroutines; the results slice is index-addressed to
// preserve input order regardless of completion order.
func (b *Batch) Process(items []ocr.Response, rules []model.CategoryRule) model.BatchResult {
	results := make([]model.BatchItemResult, len(items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, b.jobs)

	for i := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = b.processOne(idx, items[idx], rules)
		}(i)
	}
	wg.Wait()

	result := model.BatchResult{
		Results: results,
		Total:   len(items),
	}
	for _, item := range results {
		if item.Success {
			result.SuccessCount++
		}
	}

	slog.Debug("batch processed",
		"total", result.Total,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount())

	return result
}

// processOne isolates a single item: a panic inside the parser becomes a
// failed item result instead of taking down the batch.
func (b *Batch) processOne(idx int, item ocr.Response, rules []model.CategoryRule) (result model.BatchItemResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("batch item panicked", "index", idx, "panic", r)
			result = model.BatchItemResult{
				Index: idx,
				Error: fmt.Sprintf("item %d: %v", idx, r),
			}
		}
	}()

	bill := b.parser.Parse(item, rules)
	return model.BatchItemResult{
		Index:   idx,
		Success: true,
		Bill:    &bill,
	}
}
