package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/model"
)

// GetCategoryRules returns all rules ordered the way the classifier
// evaluates them: priority descending, weak rules after non-weak rules at
// equal priority, then insertion order. When enabledOnly is set, disabled
// rules are filtered out.
func (s *SQLiteStorage) GetCategoryRules(ctx context.Context, enabledOnly bool) ([]model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, keyword, category, priority, is_regex, is_weak, enabled, created_at, updated_at
		FROM category_rules`
	if enabledOnly {
		query += `
		WHERE enabled = 1`
	}
	query += `
		ORDER BY priority DESC, is_weak ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category rules: %w", err)
	}
	defer rows.Close()

	var rules []model.CategoryRule
	for rows.Next() {
		var rule model.CategoryRule
		if err := rows.Scan(&rule.ID, &rule.Keyword, &rule.Category, &rule.Priority,
			&rule.IsRegex, &rule.IsWeak, &rule.Enabled, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rules: %w", err)
	}

	slog.Debug("retrieved category rules", "count", len(rules), "enabled_only", enabledOnly)
	return rules, nil
}

// CreateCategoryRule inserts a new rule and returns it with its assigned ID.
func (s *SQLiteStorage) CreateCategoryRule(ctx context.Context, rule model.CategoryRule) (*model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateRule(&rule); err != nil {
		return nil, err
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO category_rules (keyword, category, priority, is_regex, is_weak, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rule.Keyword, rule.Category, rule.Priority, rule.IsRegex, rule.IsWeak, rule.Enabled, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get rule ID: %w", err)
	}

	rule.ID = int(id)
	rule.CreatedAt = now
	rule.UpdatedAt = now

	slog.Info("created category rule",
		"id", rule.ID, "keyword", rule.Keyword, "category", rule.Category)
	return &rule, nil
}

// UpdateCategoryRule rewrites an existing rule's fields.
func (s *SQLiteStorage) UpdateCategoryRule(ctx context.Context, rule model.CategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRule(&rule); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE category_rules
		SET keyword = ?, category = ?, priority = ?, is_regex = ?, is_weak = ?, enabled = ?, updated_at = ?
		WHERE id = ?`,
		rule.Keyword, rule.Category, rule.Priority, rule.IsRegex, rule.IsWeak, rule.Enabled, time.Now(), rule.ID)
	if err != nil {
		return fmt.Errorf("failed to update category rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category rule %d: %w", rule.ID, common.ErrNotFound)
	}
	return nil
}

// DeleteCategoryRule removes a rule by ID.
func (s *SQLiteStorage) DeleteCategoryRule(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM category_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category rule %d: %w", id, common.ErrNotFound)
	}

	slog.Info("deleted category rule", "id", id)
	return nil
}

// SeedCategoryRules installs the given rules if the table is empty. An
// already-seeded table is left untouched so user edits survive restarts.
func (s *SQLiteStorage) SeedCategoryRules(ctx context.Context, rules []model.CategoryRule) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM category_rules`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count category rules: %w", err)
	}
	if count > 0 {
		slog.Debug("category rules already seeded", "count", count)
		return 0, nil
	}

	seeded := 0
	for _, rule := range rules {
		if _, err := s.CreateCategoryRule(ctx, rule); err != nil {
			return seeded, fmt.Errorf("failed to seed rule %q: %w", rule.Keyword, err)
		}
		seeded++
	}

	slog.Info("seeded default category rules", "count", seeded)
	return seeded, nil
}

// GetCategoryRule returns a single rule by ID, or common.ErrNotFound.
func (s *SQLiteStorage) GetCategoryRule(ctx context.Context, id int) (*model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var rule model.CategoryRule
	err := s.db.QueryRowContext(ctx, `
		SELECT id, keyword, category, priority, is_regex, is_weak, enabled, created_at, updated_at
		FROM category_rules
		WHERE id = ?`, id).Scan(
		&rule.ID, &rule.Keyword, &rule.Category, &rule.Priority,
		&rule.IsRegex, &rule.IsWeak, &rule.Enabled, &rule.CreatedAt, &rule.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category rule %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category rule: %w", err)
	}
	return &rule, nil
}
