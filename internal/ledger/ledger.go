// Package ledger holds the in-memory, append-only list of transactions.
package ledger

import "fjacquet/expense-tracker/internal/models"

// Ledger is an ordered, growable collection of transactions kept for the
// lifetime of one run. It is not safe for concurrent use.
type Ledger struct {
	transactions []models.Transaction
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append adds tx at the end. No validation is performed here.
func (l *Ledger) Append(tx models.Transaction) {
	l.transactions = append(l.transactions, tx)
}

// All returns the transactions in insertion order. The returned slice is a
// copy; changing it does not affect the ledger.
func (l *Ledger) All() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}
