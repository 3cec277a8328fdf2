package dto

import (
	"github.com/pocketledger/backend/internal/application/adapter"
)

// DashboardResponse represents the month-over-month dashboard summary in API
// responses. Monetary fields are in integer cents; percent changes are
// decimal strings with two fraction digits.
type DashboardResponse struct {
	TotalIncome          int64  `json:"total_income"`
	TotalExpense         int64  `json:"total_expense"`
	Balance              int64  `json:"balance"`
	TransactionCount     int64  `json:"transaction_count"`
	PreviousMonthIncome  int64  `json:"previous_month_income"`
	PreviousMonthExpense int64  `json:"previous_month_expense"`
	IncomeChange         int64  `json:"income_change"`
	IncomeChangePercent  string `json:"income_change_percent"`
	ExpenseChange        int64  `json:"expense_change"`
	ExpenseChangePercent string `json:"expense_change_percent"`
}

// ToDashboardResponse converts DashboardStats to a DashboardResponse DTO.
func ToDashboardResponse(stats *adapter.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalIncome:          stats.TotalIncome,
		TotalExpense:         stats.TotalExpense,
		Balance:              stats.Balance,
		TransactionCount:     stats.TransactionCount,
		PreviousMonthIncome:  stats.PreviousMonthIncome,
		PreviousMonthExpense: stats.PreviousMonthExpense,
		IncomeChange:         stats.IncomeChange,
		IncomeChangePercent:  stats.IncomeChangePercent.StringFixed(2),
		ExpenseChange:        stats.ExpenseChange,
		ExpenseChangePercent: stats.ExpenseChangePercent.StringFixed(2),
	}
}
