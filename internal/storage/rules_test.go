package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapledger/snapledger/internal/classify"
	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/model"
)

// createTestStorage opens a migrated store in a temp dir.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testRule(keyword, category string, priority int) model.CategoryRule {
	return model.CategoryRule{
		Keyword:  keyword,
		Category: category,
		Priority: priority,
		Enabled:  true,
	}
}

func TestCategoryRuleCRUD(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	created, err := store.CreateCategoryRule(ctx, testRule("星巴克", "餐饮/咖啡", 10))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := store.GetCategoryRule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "星巴克", fetched.Keyword)
	assert.Equal(t, "餐饮/咖啡", fetched.Category)
	assert.Equal(t, 10, fetched.Priority)
	assert.True(t, fetched.Enabled)

	fetched.Category = "餐饮/咖啡外带"
	fetched.Enabled = false
	require.NoError(t, store.UpdateCategoryRule(ctx, *fetched))

	updated, err := store.GetCategoryRule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "餐饮/咖啡外带", updated.Category)
	assert.False(t, updated.Enabled)

	require.NoError(t, store.DeleteCategoryRule(ctx, created.ID))

	_, err = store.GetCategoryRule(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCategoryRuleValidation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.CreateCategoryRule(ctx, testRule("", "餐饮/咖啡", 1))
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = store.CreateCategoryRule(ctx, testRule("星巴克", "", 1))
	assert.ErrorIs(t, err, ErrInvalidRule)

	err = store.UpdateCategoryRule(ctx, model.CategoryRule{ID: 9999, Keyword: "x", Category: "y"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = store.DeleteCategoryRule(ctx, 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetCategoryRulesOrdering(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Inserted deliberately out of evaluation order.
	weak := testRule("京东", "购物/电商", 5)
	weak.IsWeak = true
	disabled := testRule("滴滴", "交通/打车", 50)
	disabled.Enabled = false

	for _, rule := range []model.CategoryRule{
		testRule("超市", "购物/生活用品", 1),
		weak,
		testRule("全家", "购物/便利店", 5),
		disabled,
		testRule("星巴克", "餐饮/咖啡", 10),
	} {
		_, err := store.CreateCategoryRule(ctx, rule)
		require.NoError(t, err)
	}

	rules, err := store.GetCategoryRules(ctx, true)
	require.NoError(t, err)
	require.Len(t, rules, 4, "disabled rule filtered out")

	// Priority desc, weak after non-weak at equal priority.
	keywords := make([]string, len(rules))
	for i, rule := range rules {
		keywords[i] = rule.Keyword
	}
	assert.Equal(t, []string{"星巴克", "全家", "京东", "超市"}, keywords)

	all, err := store.GetCategoryRules(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSeedCategoryRules(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	seeded, err := store.SeedCategoryRules(ctx, classify.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, len(classify.DefaultRules()), seeded)

	// Seeding again is a no-op so user edits survive.
	again, err := store.SeedCategoryRules(ctx, classify.DefaultRules())
	require.NoError(t, err)
	assert.Zero(t, again)

	rules, err := store.GetCategoryRules(ctx, true)
	require.NoError(t, err)
	assert.Len(t, rules, len(classify.DefaultRules()))
}
