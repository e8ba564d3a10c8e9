// Package classify matches merchant text against prioritized keyword rules
// to pick a spending category.
package classify

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/model"
)

// Classify matches text against the supplied rule set and returns the
// category of the first matching rule.
//
// Disabled rules are ignored. The remaining rules are ordered by priority
// descending; at equal priority weak rules sort after non-weak rules, so a
// generic keyword like a platform name only wins when nothing more specific
// matches. The sort is stable, leaving insertion order as the final
// tie-break. Evaluation short-circuits on the first match.
//
// Keyword rules use case-insensitive substring containment. Regex rules are
// compiled case-insensitively; a malformed pattern is logged and skipped
// without aborting classification. No rule matching is a valid outcome, not
// an error.
func Classify(text string, rules []model.CategoryRule) model.ClassificationResult {
	ordered := orderRules(rules)

	for i := range ordered {
		rule := &ordered[i]
		if matches(text, rule) {
			return model.ClassificationResult{
				Matched:  true,
				Category: rule.Category,
				RuleUsed: rule,
			}
		}
	}

	return model.ClassificationResult{Matched: false}
}

// orderRules filters to enabled rules and sorts them into evaluation order.
// The input slice is never mutated.
func orderRules(rules []model.CategoryRule) []model.CategoryRule {
	ordered := make([]model.CategoryRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Enabled {
			ordered = append(ordered, rule)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return !ordered[i].IsWeak && ordered[j].IsWeak
	})

	return ordered
}

func matches(text string, rule *model.CategoryRule) bool {
	if rule.Keyword == "" {
		return false
	}

	if rule.IsRegex {
		matched, err := common.MatchRegexFold(rule.Keyword, text)
		if err != nil {
			slog.Warn("skipping malformed regex rule",
				"keyword", rule.Keyword,
				"category", rule.Category,
				"error", err)
			return false
		}
		return matched
	}

	return strings.Contains(strings.ToLower(text), strings.ToLower(rule.Keyword))
}
