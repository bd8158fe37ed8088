package ledger

import (
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(day int, amount int64, category string, income bool) models.Transaction {
	return models.NewTransaction(time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(amount), category, income)
}

func TestLedger_Empty(t *testing.T) {
	l := New()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.All())
}

func TestLedger_AppendPreservesOrder(t *testing.T) {
	l := New()
	input := []models.Transaction{
		tx(3, 100, "Salary", true),
		tx(1, 20, "Food", false),
		tx(2, 900, "Rent", false),
	}
	for _, entry := range input {
		l.Append(entry)
	}

	require.Equal(t, len(input), l.Len())
	assert.Equal(t, input, l.All())
}

func TestLedger_AllowsDuplicates(t *testing.T) {
	l := New()
	same := tx(1, 5, "Food", false)
	l.Append(same)
	l.Append(same)

	assert.Equal(t, []models.Transaction{same, same}, l.All())
}

func TestLedger_AllReturnsCopy(t *testing.T) {
	l := New()
	l.Append(tx(1, 5, "Food", false))

	snapshot := l.All()
	snapshot[0].Category = "Changed"

	assert.Equal(t, "Food", l.All()[0].Category)
}
