package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapledger/snapledger/internal/model"
)

func rule(keyword, category string, priority int) model.CategoryRule {
	return model.CategoryRule{
		Keyword:  keyword,
		Category: category,
		Priority: priority,
		Enabled:  true,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		rules        []model.CategoryRule
		wantMatched  bool
		wantCategory string
	}{
		{
			name: "substring match is case-insensitive",
			text: "STARBUCKS Coffee #123",
			rules: []model.CategoryRule{
				rule("starbucks", "Dining/Coffee", 10),
			},
			wantMatched:  true,
			wantCategory: "Dining/Coffee",
		},
		{
			name: "higher priority wins when both match",
			text: "超市/药房门店",
			rules: []model.CategoryRule{
				rule("超市", "购物/生活用品", 5),
				rule("超市/药房", "健康/药品", 10),
			},
			wantMatched:  true,
			wantCategory: "健康/药品",
		},
		{
			name: "weak rule loses priority tie",
			text: "京东到家 全家便利店",
			rules: []model.CategoryRule{
				{Keyword: "京东", Category: "购物/电商", Priority: 5, IsWeak: true, Enabled: true},
				{Keyword: "全家", Category: "购物/便利店", Priority: 5, Enabled: true},
			},
			wantMatched:  true,
			wantCategory: "购物/便利店",
		},
		{
			name: "disabled rule never matches",
			text: "滴滴出行",
			rules: []model.CategoryRule{
				{Keyword: "滴滴", Category: "交通/打车", Priority: 10, Enabled: false},
			},
			wantMatched: false,
		},
		{
			name: "regex rule matches case-insensitively",
			text: "LUCKIN coffee shop",
			rules: []model.CategoryRule{
				{Keyword: `luckin|瑞幸`, Category: "餐饮/咖啡", Priority: 10, IsRegex: true, Enabled: true},
			},
			wantMatched:  true,
			wantCategory: "餐饮/咖啡",
		},
		{
			name: "malformed regex skipped without aborting",
			text: "星巴克咖啡",
			rules: []model.CategoryRule{
				{Keyword: `([unclosed`, Category: "broken", Priority: 20, IsRegex: true, Enabled: true},
				rule("星巴克", "餐饮/咖啡", 10),
			},
			wantMatched:  true,
			wantCategory: "餐饮/咖啡",
		},
		{
			name: "equal priority and weakness keeps insertion order",
			text: "麦当劳甜品站",
			rules: []model.CategoryRule{
				rule("麦当劳", "餐饮/正餐", 5),
				rule("甜品", "餐饮/零食", 5),
			},
			wantMatched:  true,
			wantCategory: "餐饮/正餐",
		},
		{
			name:        "no rule matches",
			text:        "完全陌生的商户",
			rules:       []model.CategoryRule{rule("星巴克", "餐饮/咖啡", 10)},
			wantMatched: false,
		},
		{
			name:        "empty text with substring rules",
			text:        "",
			rules:       []model.CategoryRule{rule("星巴克", "餐饮/咖啡", 10)},
			wantMatched: false,
		},
		{
			name:        "empty rule set",
			text:        "星巴克",
			rules:       nil,
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.text, tt.rules)
			assert.Equal(t, tt.wantMatched, result.Matched)
			if tt.wantMatched {
				assert.Equal(t, tt.wantCategory, result.Category)
				require.NotNil(t, result.RuleUsed)
				assert.Equal(t, tt.wantCategory, result.RuleUsed.Category)
			} else {
				assert.Empty(t, result.Category)
				assert.Nil(t, result.RuleUsed)
			}
		})
	}
}

func TestClassifyShortCircuits(t *testing.T) {
	// Both rules match, but the higher-priority one is returned and reports
	// which rule fired.
	rules := []model.CategoryRule{
		rule("咖啡", "餐饮/咖啡", 1),
		rule("星巴克", "餐饮/咖啡外带", 10),
	}

	result := Classify("星巴克咖啡", rules)
	assert.True(t, result.Matched)
	assert.Equal(t, "餐饮/咖啡外带", result.Category)
	require.NotNil(t, result.RuleUsed)
	assert.Equal(t, "星巴克", result.RuleUsed.Keyword)
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	rules := []model.CategoryRule{
		rule("b-low", "B", 1),
		rule("a-high", "A", 10),
	}

	_ = Classify("a-high", rules)

	assert.Equal(t, "b-low", rules[0].Keyword)
	assert.Equal(t, "a-high", rules[1].Keyword)
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.NotEmpty(t, rules)

	for _, r := range rules {
		assert.True(t, r.Enabled, "seed rule %q must be enabled", r.Keyword)
		assert.NotEmpty(t, r.Category)
	}

	// A concrete brand must beat the weak platform token it rides on.
	result := Classify("京东 全家便利店订单", rules)
	require.True(t, result.Matched)
	assert.Equal(t, "购物/便利店", result.Category)
}
