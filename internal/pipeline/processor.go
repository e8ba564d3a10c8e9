package pipeline

import (
	"strings"

	"github.com/snapledger/snapledger/internal/classify"
	"github.com/snapledger/snapledger/internal/extract"
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/ocr"
)

// Processor is the default Parser. It is stateless: the rule set arrives
// fresh on every call and nothing is cached between invocations.
type Processor struct {
	// Clock backs the date extractor's "today" fallback; nil means
	// time.Now.
	Clock extract.Clock
	// MerchantOptions tunes the merchant heuristic fallback bounds.
	MerchantOptions extract.MerchantOptions
}

// New returns a Processor with default options.
func New() *Processor {
	return &Processor{}
}

// Parse normalizes the response into lines, runs the three extractors
// independently, classifies the extracted merchant, and assembles the
// draft bill. Extractor defaults flow through untouched: empty merchant,
// zero amount, today's date, empty category.
func (p *Processor) Parse(resp ocr.Response, rules []model.CategoryRule) model.DraftBill {
	fields := p.ExtractFields(resp)

	category := ""
	if result := classify.Classify(fields.Merchant, rules); result.Matched {
		category = result.Category
	}

	return model.DraftBill{
		Merchant: fields.Merchant,
		Amount:   fields.Amount,
		Date:     fields.Date,
		Category: category,
		RawText:  fields.RawLines,
	}
}

// ExtractFields runs the normalizer and the three field extractors without
// classification.
func (p *Processor) ExtractFields(resp ocr.Response) model.ExtractedFields {
	lines := ocr.Lines(resp)
	joined := strings.Join(lines, "\n")

	amount, found := extract.Amount(joined)

	return model.ExtractedFields{
		Merchant:    extract.MerchantWithOptions(lines, p.MerchantOptions),
		Amount:      amount,
		AmountFound: found,
		Date:        extract.Date(joined, p.Clock),
		RawLines:    lines,
	}
}
