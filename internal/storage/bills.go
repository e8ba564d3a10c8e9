package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snapledger/snapledger/internal/model"
)

// SaveBill persists a confirmed draft bill and returns the stored record.
// Drafts reach here only after the caller has reviewed them; unconfirmed
// pipeline output is never written.
func (s *SQLiteStorage) SaveBill(ctx context.Context, draft model.DraftBill) (*model.Bill, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	bill := model.Bill{
		Merchant: draft.Merchant,
		Amount:   draft.Amount,
		Date:     draft.Date,
		Category: draft.Category,
	}
	if err := validateBill(&bill); err != nil {
		return nil, err
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bills (merchant, amount, bill_date, category, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		bill.Merchant, bill.Amount, bill.Date, bill.Category, now)
	if err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get bill ID: %w", err)
	}

	bill.ID = int(id)
	bill.CreatedAt = now

	slog.Info("saved bill", "id", bill.ID, "merchant", bill.Merchant, "amount", bill.Amount)
	return &bill, nil
}

// ListBills returns stored bills, newest first, capped at limit (0 means no
// cap).
func (s *SQLiteStorage) ListBills(ctx context.Context, limit int) ([]model.Bill, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, merchant, amount, bill_date, category, created_at
		FROM bills
		ORDER BY bill_date DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += `
		LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	var bills []model.Bill
	for rows.Next() {
		var bill model.Bill
		if err := rows.Scan(&bill.ID, &bill.Merchant, &bill.Amount,
			&bill.Date, &bill.Category, &bill.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bills: %w", err)
	}

	return bills, nil
}
