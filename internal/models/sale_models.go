package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a single line of a sale order. TotalPrice is fixed at save
// time (quantity x unit price); it is not re-derived on read.
type SaleItem struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Quantity     float64         `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// Sale is a customer order. Completing a sale is what triggers SALE stock
// movements; pending and cancelled sales never touch the ledger.
type Sale struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"` // denormalized snapshot
	Date         time.Time       `json:"date"`
	Status       Status          `json:"status"`
	Items        []SaleItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"` // sum of item totals at save time
	Notes        *string         `json:"notes,omitempty"`
}
