package model

import "time"

// ExtractedFields holds the raw output of the field extractors before
// classification.
//
// Amount is always >= 0. A zero amount with AmountFound=false means no
// amount pattern matched; AmountFound distinguishes that from a genuine
// zero-value transaction. Date is always populated: when no date pattern
// matches it carries the processing date.
type ExtractedFields struct {
	Merchant    string   `json:"merchant"`
	Date        string   `json:"date"`
	RawLines    []string `json:"raw_lines"`
	Amount      float64  `json:"amount"`
	AmountFound bool     `json:"amount_found"`
}

// DraftBill is the structured, unconfirmed output of the pipeline. It is
// handed back to the caller, which owns persistence and user confirmation.
type DraftBill struct {
	Merchant string   `json:"merchant"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	RawText  []string `json:"raw_text"`
	Amount   float64  `json:"amount"`
}

// Bill is a confirmed draft bill as persisted by the storage layer.
type Bill struct {
	CreatedAt time.Time `json:"created_at"`
	Merchant  string    `json:"merchant"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	ID        int       `json:"id"`
	Amount    float64   `json:"amount"`
}

// BatchItemResult records the outcome of a single item in a batch run.
// Exactly one of Bill or Error is meaningful, selected by Success.
type BatchItemResult struct {
	Bill    *DraftBill `json:"bill,omitempty"`
	Error   string     `json:"error,omitempty"`
	Index   int        `json:"index"`
	Success bool       `json:"success"`
}

// BatchResult aggregates per-item outcomes so callers can surface partial
// failure without discarding successful items. Results are ordered by input
// index.
type BatchResult struct {
	Results      []BatchItemResult `json:"results"`
	Total        int               `json:"total"`
	SuccessCount int               `json:"success_count"`
}

// FailedCount returns the number of items that did not produce a bill.
func (r BatchResult) FailedCount() int {
	return r.Total - r.SuccessCount
}
