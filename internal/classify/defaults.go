package classify

import "github.com/snapledger/snapledger/internal/model"

// DefaultRules returns the seed keyword rule table. Specific brands carry
// high priority; platform and generic tokens are weak so they only win when
// no brand matches.
func DefaultRules() []model.CategoryRule {
	return []model.CategoryRule{
		// Brands and concrete merchants.
		{Keyword: "星巴克", Category: "餐饮/咖啡", Priority: 10, Enabled: true},
		{Keyword: "瑞幸", Category: "餐饮/咖啡", Priority: 10, Enabled: true},
		{Keyword: "麦当劳", Category: "餐饮/正餐", Priority: 10, Enabled: true},
		{Keyword: "肯德基", Category: "餐饮/正餐", Priority: 10, Enabled: true},
		{Keyword: "汉堡王", Category: "餐饮/正餐", Priority: 10, Enabled: true},
		{Keyword: "滴滴", Category: "交通/打车", Priority: 10, Enabled: true},
		{Keyword: "中石化", Category: "交通/加油", Priority: 10, Enabled: true},
		{Keyword: "全家", Category: "购物/便利店", Priority: 10, Enabled: true},
		{Keyword: "罗森", Category: "购物/便利店", Priority: 10, Enabled: true},
		{Keyword: "超市", Category: "购物/生活用品", Priority: 5, Enabled: true},

		// Platform and generic tokens: weak, last resort.
		{Keyword: "百亿补贴", Category: "购物/电商", Priority: 1, IsWeak: true, Enabled: true},
		{Keyword: "拼多多", Category: "购物/电商", Priority: 1, IsWeak: true, Enabled: true},
		{Keyword: "淘宝", Category: "购物/电商", Priority: 1, IsWeak: true, Enabled: true},
		{Keyword: "京东", Category: "购物/电商", Priority: 1, IsWeak: true, Enabled: true},
		{Keyword: "云闪付", Category: "财务/支付", Priority: 1, IsWeak: true, Enabled: true},
	}
}
