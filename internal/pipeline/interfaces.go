// Package pipeline sequences the OCR line normalizer, the field
// extractors, and the category classifier into draft bills.
package pipeline

import (
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/ocr"
)

// Parser turns a single provider OCR response into a draft bill using the
// supplied rule set. Implementations must not fail for degraded input: an
// empty response yields a bill with default fields.
type Parser interface {
	Parse(resp ocr.Response, rules []model.CategoryRule) model.DraftBill
}
