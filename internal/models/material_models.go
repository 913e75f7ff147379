package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material represents a trackable inventory item with an on-hand quantity
// and a reorder threshold.
type Material struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CurrentQuantity float64         `json:"current_quantity"`
	MinQuantity     float64         `json:"min_quantity"`
	Unit            string          `json:"unit"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	Category        *string         `json:"category,omitempty"`
	LastUpdated     time.Time       `json:"last_updated"` // re-stamped on every mutation
}

// StockMovement is an immutable, signed quantity delta applied to a material,
// with before/after snapshots and a cause. Movements are created exclusively
// by the stock ledger; they are never updated or deleted.
type StockMovement struct {
	ID             string       `json:"id"`
	MaterialID     string       `json:"material_id"`
	MaterialName   string       `json:"material_name"` // snapshot at posting time
	Type           MovementType `json:"type"`
	Quantity       float64      `json:"quantity"` // signed: negative depletes, positive adds
	BeforeQuantity float64      `json:"before_quantity"`
	AfterQuantity  float64      `json:"after_quantity"`
	Date           time.Time    `json:"date"`
	ReferenceID    *string      `json:"reference_id,omitempty"` // causing sale/production id
	Notes          *string      `json:"notes,omitempty"`
}
