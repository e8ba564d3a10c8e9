package cli

import (
	"fmt"
	"strings"

	"github.com/snapledger/snapledger/internal/model"
)

// Unclassified is the display bucket for bills no rule matched.
const Unclassified = "未分类"

// RenderBill formats a draft bill for terminal display. Degraded defaults
// (empty merchant, zero amount, unmatched category) are rendered in the
// warning style so low-confidence fields stand out for review.
func RenderBill(bill model.DraftBill) string {
	var b strings.Builder

	writeField := func(label, value string, degraded bool) {
		b.WriteString(LabelStyle.Render(label))
		if degraded {
			b.WriteString(WarningStyle.Render(value))
		} else {
			b.WriteString(value)
		}
		b.WriteString("\n")
	}

	merchant := bill.Merchant
	if merchant == "" {
		merchant = "(unknown)"
	}
	writeField("Merchant", merchant, bill.Merchant == "")
	writeField("Amount", fmt.Sprintf("%.2f", bill.Amount), bill.Amount == 0)
	writeField("Date", bill.Date, false)

	category := bill.Category
	if category == "" {
		category = Unclassified
	}
	writeField("Category", category, bill.Category == "")

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderBatchSummary formats the total/success/failed counts of a batch.
func RenderBatchSummary(result model.BatchResult) string {
	summary := fmt.Sprintf("%d processed, %d succeeded, %d failed",
		result.Total, result.SuccessCount, result.FailedCount())
	if result.FailedCount() > 0 {
		return WarningStyle.Render(summary)
	}
	return SuccessStyle.Render(summary)
}
