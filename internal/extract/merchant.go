package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default bounds for the heuristic fallback: a candidate line must be
// strictly longer than MinLen and strictly shorter than MaxLen runes.
const (
	DefaultMerchantMinLen = 1
	DefaultMerchantMaxLen = 30
)

// merchantLabels mark a line as naming the payee. The text after the label
// is taken as the merchant.
var merchantLabels = []string{
	"商户名称",
	"商户",
	"店铺名称",
	"店铺",
	"收款方",
	"收款人",
	"付款对象",
	"merchant",
	"payee",
	"store",
}

// merchantPhrases match known payment-app phrasings where the payee is
// embedded in a sentence rather than labeled.
var merchantPhrases = []*regexp.Regexp{
	regexp.MustCompile(`向(.+?)付款`),
	regexp.MustCompile(`付款给\s*(.+)`),
	regexp.MustCompile(`(?i)pay\s+to\s+(.+)`),
	regexp.MustCompile(`(?i)to\s+(.+?),\s*pay`),
}

// MerchantOptions tunes the heuristic fallback bounds. The zero value uses
// the defaults.
type MerchantOptions struct {
	MinLen int
	MaxLen int
}

func (o MerchantOptions) withDefaults() MerchantOptions {
	if o.MinLen == 0 {
		o.MinLen = DefaultMerchantMinLen
	}
	if o.MaxLen == 0 {
		o.MaxLen = DefaultMerchantMaxLen
	}
	return o
}

// merchantStrategy returns a merchant guess and whether it succeeded.
type merchantStrategy func(lines []string, opts MerchantOptions) (string, bool)

var merchantStrategies = []merchantStrategy{
	merchantByLabel,
	merchantByPhrase,
	merchantByHeuristic,
	merchantFirstLine,
}

// Merchant extracts the merchant name from the OCR lines using the default
// heuristic bounds.
func Merchant(lines []string) string {
	return MerchantWithOptions(lines, MerchantOptions{})
}

// MerchantWithOptions runs the merchant strategy chain. The first strategy
// producing a non-empty value wins; later strategies are never consulted.
// With zero input lines the result is the empty string.
func MerchantWithOptions(lines []string, opts MerchantOptions) string {
	opts = opts.withDefaults()
	for _, strategy := range merchantStrategies {
		if name, ok := strategy(lines, opts); ok {
			return name
		}
	}
	return ""
}

// merchantByLabel scans every line for a payee label and returns the text
// after it.
func merchantByLabel(lines []string, _ MerchantOptions) (string, bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, label := range merchantLabels {
			idx := strings.Index(lower, label)
			if idx < 0 {
				continue
			}
			rest := line[idx+len(label):]
			rest = strings.TrimLeft(rest, " \t:：-")
			rest = strings.TrimSpace(rest)
			if rest != "" {
				return rest, true
			}
		}
	}
	return "", false
}

// merchantByPhrase matches payment-app sentence patterns like 向X付款.
func merchantByPhrase(lines []string, _ MerchantOptions) (string, bool) {
	for _, line := range lines {
		for _, re := range merchantPhrases {
			m := re.FindStringSubmatch(line)
			if len(m) < 2 {
				continue
			}
			name := strings.TrimSpace(m[1])
			if name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// merchantByHeuristic picks the first line that does not look like an
// amount or timestamp: non-empty, not digit- or currency-led, and with a
// rune count strictly inside the configured bounds.
func merchantByHeuristic(lines []string, opts MerchantOptions) (string, bool) {
	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		if candidate == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(candidate)
		if unicode.IsDigit(first) || isCurrencyGlyph(first) {
			continue
		}
		n := utf8.RuneCountInString(candidate)
		if n > opts.MinLen && n < opts.MaxLen {
			return candidate, true
		}
	}
	return "", false
}

// merchantFirstLine is the absolute fallback: the first line as-is.
func merchantFirstLine(lines []string, _ MerchantOptions) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	return strings.TrimSpace(lines[0]), true
}

func isCurrencyGlyph(r rune) bool {
	switch r {
	case '¥', '￥', '$', '€', '£':
		return true
	}
	return false
}
