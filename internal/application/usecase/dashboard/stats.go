package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// MonthTotals holds the summed income and expense (in cents) of a single
// calendar month.
type MonthTotals struct {
	Income  int64
	Expense int64
}

// ComputeStats derives the full dashboard summary from the current and
// previous month totals and the current month transaction count.
func ComputeStats(current, previous MonthTotals, transactionCount int64) *adapter.DashboardStats {
	return &adapter.DashboardStats{
		TotalIncome:          current.Income,
		TotalExpense:         current.Expense,
		Balance:              current.Income - current.Expense,
		TransactionCount:     transactionCount,
		PreviousMonthIncome:  previous.Income,
		PreviousMonthExpense: previous.Expense,
		IncomeChange:         current.Income - previous.Income,
		IncomeChangePercent:  percentChange(previous.Income, current.Income),
		ExpenseChange:        current.Expense - previous.Expense,
		ExpenseChangePercent: percentChange(previous.Expense, current.Expense),
	}
}

// percentChange returns ((current-previous)/previous)*100 rounded half-up to
// two decimal places, or zero when the previous month had no activity.
func percentChange(previous, current int64) decimal.Decimal {
	if previous == 0 {
		return decimal.Zero
	}

	delta := decimal.NewFromInt(current - previous)
	return delta.
		Div(decimal.NewFromInt(previous)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
