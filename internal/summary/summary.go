// Package summary aggregates ledger transactions by calendar month.
package summary

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// NoTransactionsNotice is shown instead of any month line when the ledger is empty.
const NoTransactionsNotice = "No transactions found."

// MonthlySummary holds the totals of one calendar month.
type MonthlySummary struct {
	Month    time.Time // first day of the month, UTC
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Count    int
}

// Balance returns income minus expenses.
func (m MonthlySummary) Balance() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// Label returns the group key, e.g. "JANUARY 2024".
func (m MonthlySummary) Label() string {
	return dateutils.MonthLabel(m.Month)
}

// String renders the summary line shown to the user.
func (m MonthlySummary) String() string {
	return fmt.Sprintf("%s - Income: %s | Expenses: %s | Balance: %s",
		m.Label(),
		m.Income.StringFixed(2),
		m.Expenses.StringFixed(2),
		m.Balance().StringFixed(2))
}

// Engine computes monthly summaries.
type Engine struct {
	logger logging.Logger
}

// NewEngine creates an Engine.
func NewEngine(logger logging.Logger) *Engine {
	return &Engine{logger: logger}
}

// Summarize groups transactions by month and year and returns one summary per
// month in chronological order. An empty input yields an empty result.
func (e *Engine) Summarize(transactions []models.Transaction) []MonthlySummary {
	groups := make(map[time.Time]*MonthlySummary)

	for _, tx := range transactions {
		key := dateutils.StartOfMonth(models.CalendarDate(tx.Date))
		group, exists := groups[key]
		if !exists {
			group = &MonthlySummary{
				Month:    key,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			groups[key] = group
		}

		if tx.IsIncome {
			group.Income = group.Income.Add(tx.Amount)
		} else {
			group.Expenses = group.Expenses.Add(tx.Amount)
		}
		group.Count++
	}

	summaries := make([]MonthlySummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, *group)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month.Before(summaries[j].Month)
	})

	e.logger.Debug("Summarized transactions",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldMonths, len(summaries)))

	return summaries
}

// Lines renders summaries for display, or the single empty-ledger notice.
func Lines(summaries []MonthlySummary) []string {
	if len(summaries) == 0 {
		return []string{NoTransactionsNotice}
	}
	lines := make([]string, len(summaries))
	for i, s := range summaries {
		lines[i] = s.String()
	}
	return lines
}
