package models

import "time"

// ProductionMaterial is a material line of a production order. Only a line
// with a defined actual quantity consumes stock; planned quantity is an
// estimate and never moves inventory.
type ProductionMaterial struct {
	ID              string   `json:"id"`
	MaterialID      string   `json:"material_id"`
	MaterialName    string   `json:"material_name"`
	PlannedQuantity float64  `json:"planned_quantity"`
	ActualQuantity  *float64 `json:"actual_quantity,omitempty"`
	Unit            string   `json:"unit"`
}

// Production is a record of materials planned and actually consumed to
// produce output.
type Production struct {
	ID               string               `json:"id"`
	ProductionNumber string               `json:"production_number"`
	Description      string               `json:"description"`
	StartDate        time.Time            `json:"start_date"`
	EndDate          *time.Time           `json:"end_date,omitempty"` // stamped on completion
	Status           Status               `json:"status"`
	Materials        []ProductionMaterial `json:"materials"`
	Notes            *string              `json:"notes,omitempty"`
}
