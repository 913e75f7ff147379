package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOQItem is a line of a bill of quantities. TotalPrice includes the
// wastage factor: quantity x unit price x wastage.
type BOQItem struct {
	ID            string          `json:"id"`
	MaterialID    string          `json:"material_id"`
	MaterialName  string          `json:"material_name"`
	Quantity      float64         `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	WastageFactor float64         `json:"wastage_factor"` // >= 1
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// BOQ is a planning document listing required materials for a project.
// BOQs never trigger stock movements.
type BOQ struct {
	ID          string          `json:"id"`
	ProjectName string          `json:"project_name"`
	Date        time.Time       `json:"date"`
	Status      Status          `json:"status"`
	Items       []BOQItem       `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       *string         `json:"notes,omitempty"`
}
