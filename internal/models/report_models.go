package models

import "github.com/shopspring/decimal"

// MaterialValueSummary aggregates the inventory's size and value.
type MaterialValueSummary struct {
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"` // sum of quantity x price per unit
	LowStockItems int             `json:"low_stock_items"`
}

// SalesSummary aggregates sale orders by status.
type SalesSummary struct {
	TotalSales     int             `json:"total_sales"`
	PendingSales   int             `json:"pending_sales"`
	CompletedSales int             `json:"completed_sales"`
	CancelledSales int             `json:"cancelled_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"` // completed sales only
}

// ProductionSummary aggregates production orders by status.
type ProductionSummary struct {
	TotalProductions      int `json:"total_productions"`
	InProgressProductions int `json:"in_progress_productions"`
	CompletedProductions  int `json:"completed_productions"`
	CancelledProductions  int `json:"cancelled_productions"`
}

// DashboardSummary is the combined overview served to the dashboard.
type DashboardSummary struct {
	Materials  MaterialValueSummary `json:"materials"`
	Sales      SalesSummary         `json:"sales"`
	Production ProductionSummary    `json:"production"`
}
