package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPatterns are tried in order against the joined OCR text. Each is
// anchored to a distinct label so that labeled amounts beat the bare
// decimal last resort. The first pattern whose capture parses to a finite
// number > 0 wins.
var amountPatterns = []*regexp.Regexp{
	// Currency glyph prefix: ¥25.50 / ￥ 1,234.56
	regexp.MustCompile(`[¥￥]\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	// Labeled amounts, most specific label first.
	regexp.MustCompile(`(?i)(?:金额|amount)[:：]?\s*[¥￥]?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	regexp.MustCompile(`(?i)(?:已付|paid)[:：]?\s*[¥￥]?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	regexp.MustCompile(`(?i)(?:实付款?|actually\s+paid)[:：]?\s*[¥￥]?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	regexp.MustCompile(`(?i)(?:合计|总计|total)[:：]?\s*[¥￥]?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	regexp.MustCompile(`(?i)(?:付款|payment)[:：]?\s*[¥￥]?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
	// Last resort: a bare decimal with exactly two fraction digits.
	regexp.MustCompile(`\b([0-9][0-9,]*\.[0-9]{2})\b`),
}

// Amount extracts the transaction amount from the joined OCR text. A zero
// result with ok=false means no pattern produced a positive finite value;
// it is a degraded default, not an error.
func Amount(text string) (float64, bool) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
			continue
		}
		return value, true
	}
	return 0, false
}
