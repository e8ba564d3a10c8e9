package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/snapledger/snapledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrInvalidRule = errors.New("invalid category rule")
	ErrInvalidBill = errors.New("invalid bill")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRule validates a category rule before it is written.
func validateRule(rule *model.CategoryRule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", ErrInvalidRule)
	}
	if strings.TrimSpace(rule.Keyword) == "" {
		return fmt.Errorf("%w: keyword is empty", ErrInvalidRule)
	}
	if strings.TrimSpace(rule.Category) == "" {
		return fmt.Errorf("%w: category is empty", ErrInvalidRule)
	}
	return nil
}

// validateBill validates a bill before it is written.
func validateBill(bill *model.Bill) error {
	if bill == nil {
		return fmt.Errorf("%w: bill is nil", ErrInvalidBill)
	}
	if strings.TrimSpace(bill.Merchant) == "" {
		return fmt.Errorf("%w: merchant is empty", ErrInvalidBill)
	}
	if bill.Amount < 0 {
		return fmt.Errorf("%w: amount is negative", ErrInvalidBill)
	}
	if strings.TrimSpace(bill.Date) == "" {
		return fmt.Errorf("%w: date is empty", ErrInvalidBill)
	}
	return nil
}
