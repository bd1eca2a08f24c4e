package dto

import (
	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the API shape of the dashboard summary.
type DashboardStatsResponse struct {
	CashBalance       decimal.Decimal `json:"cash_balance"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	TotalCustomerDebt decimal.Decimal `json:"total_customer_debt"`
	TodayIncome       decimal.Decimal `json:"today_income"`
	TodayExpense      decimal.Decimal `json:"today_expense"`
}

// ToDashboardStatsResponse converts the domain summary to its API shape.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		CashBalance:       s.CashBalance,
		TotalIncome:       s.TotalIncome,
		TotalExpense:      s.TotalExpense,
		TotalCustomerDebt: s.TotalCustomerDebt,
		TodayIncome:       s.TodayIncome,
		TodayExpense:      s.TodayExpense,
	}
}
