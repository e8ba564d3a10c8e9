// Package extract pulls merchant, amount, and date fields out of noisy OCR
// text. Each extractor is a pure function over the line sequence built as an
// ordered chain of candidate strategies: strategies are tried top to bottom
// and the first one producing a value wins. When no strategy succeeds the
// extractor returns a documented default instead of failing, so downstream
// consumers always receive a usable (if low-confidence) value.
package extract

import "time"

// Clock supplies the current time. The date extractor falls back to "today"
// when no date pattern matches, so the clock is injectable to keep tests
// deterministic. A nil Clock means time.Now.
type Clock func() time.Time

func now(clock Clock) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}
