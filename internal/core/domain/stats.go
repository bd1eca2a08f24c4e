package domain

import "github.com/shopspring/decimal"

// DashboardStats are the read-time aggregates shown on the dashboard.
// CashBalance is Σincome − Σexpense; TotalCustomerDebt is the sum of every
// customer's outstanding balance.
type DashboardStats struct {
	CashBalance       decimal.Decimal `json:"cash_balance"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	TotalCustomerDebt decimal.Decimal `json:"total_customer_debt"`
	TodayIncome       decimal.Decimal `json:"today_income"`
	TodayExpense      decimal.Decimal `json:"today_expense"`
}
