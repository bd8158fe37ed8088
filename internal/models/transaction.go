// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry in the ledger.
// It is a value type and is never modified once created.
type Transaction struct {
	Date     time.Time       // calendar date, UTC midnight
	Amount   decimal.Decimal // positive when entered interactively
	Category string
	IsIncome bool
}

// NewTransaction builds a Transaction, truncating the date to its calendar day.
func NewTransaction(date time.Time, amount decimal.Decimal, category string, isIncome bool) Transaction {
	return Transaction{
		Date:     CalendarDate(date),
		Amount:   amount,
		Category: category,
		IsIncome: isIncome,
	}
}

// CalendarDate drops the time-of-day and location from t.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Kind returns TransactionKindIncome or TransactionKindExpense.
func (t Transaction) Kind() string {
	if t.IsIncome {
		return TransactionKindIncome
	}
	return TransactionKindExpense
}

// String returns a compact one-line representation used in log output.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s",
		t.Date.Format("2006-01-02"), t.Kind(), t.Amount.StringFixed(2), t.Category)
}
