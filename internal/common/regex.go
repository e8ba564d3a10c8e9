package common

import "regexp"

// MatchRegexFold compiles pattern case-insensitively and matches it against
// text. Returns an error for a malformed pattern so callers can decide
// whether to skip or abort.
func MatchRegexFold(pattern, text string) (bool, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}
