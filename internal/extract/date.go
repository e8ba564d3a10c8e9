package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

// datePatterns are tried in order against the joined OCR text. The first
// two capture a full year-month-day (hyphen or Chinese glyph separators,
// then slashes); the last is a bare MM-DD HH:MM timestamp assumed to
// belong to the current year.
var (
	dateFullPattern  = regexp.MustCompile(`(20\d{2})[-年](\d{1,2})[-月](\d{1,2})日?`)
	dateSlashPattern = regexp.MustCompile(`(20\d{2})/(\d{1,2})/(\d{1,2})`)
	dateShortPattern = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})\s+\d{1,2}:\d{2}`)
)

// Date extracts the transaction date from the joined OCR text as a
// canonical YYYY-MM-DD string. Chinese date glyphs (年/月/日) and slashes
// are normalized to hyphens. When no pattern matches the result is today's
// date per the supplied clock: a deliberate fallback so downstream always
// has a usable value, not an error.
func Date(text string, clock Clock) string {
	for _, re := range []*regexp.Regexp{dateFullPattern, dateSlashPattern} {
		m := re.FindStringSubmatch(text)
		if len(m) < 4 {
			continue
		}
		if date, ok := canonicalDate(m[1], m[2], m[3]); ok {
			return date
		}
	}

	if m := dateShortPattern.FindStringSubmatch(text); len(m) >= 3 {
		year := strconv.Itoa(now(clock).Year())
		if date, ok := canonicalDate(year, m[1], m[2]); ok {
			return date
		}
	}

	return now(clock).Format("2006-01-02")
}

// canonicalDate zero-pads the components and rejects impossible months and
// days so a mangled OCR fragment falls through to the next pattern.
func canonicalDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}
