// Package seed provides the built-in sample collections used to initialize
// an empty store on first run, and as the fail-soft fallback when a stored
// collection cannot be loaded.
package seed

import (
	"encoding/json"
	"fmt"
	"time"

	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Materials returns the sample inventory. One material (Sand) sits below
// its reorder threshold so the low-stock view is populated out of the box.
func Materials() []models.Material {
	now := time.Now()
	category := func(s string) *string { return &s }
	return []models.Material{
		{
			ID:              uuid.NewString(),
			Name:            "Cement",
			CurrentQuantity: 150,
			MinQuantity:     50,
			Unit:            "bags",
			PricePerUnit:    decimal.NewFromFloat(7.5),
			Category:        category("Construction"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Steel Bars",
			CurrentQuantity: 300,
			MinQuantity:     100,
			Unit:            "pcs",
			PricePerUnit:    decimal.NewFromInt(15),
			Category:        category("Construction"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Paint",
			CurrentQuantity: 45,
			MinQuantity:     20,
			Unit:            "gallons",
			PricePerUnit:    decimal.NewFromInt(25),
			Category:        category("Finishing"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Bricks",
			CurrentQuantity: 2500,
			MinQuantity:     1000,
			Unit:            "pcs",
			PricePerUnit:    decimal.NewFromFloat(0.75),
			Category:        category("Construction"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Timber",
			CurrentQuantity: 120,
			MinQuantity:     50,
			Unit:            "boards",
			PricePerUnit:    decimal.NewFromInt(35),
			Category:        category("Construction"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Sand",
			CurrentQuantity: 18,
			MinQuantity:     20,
			Unit:            "cubic meters",
			PricePerUnit:    decimal.NewFromInt(45),
			Category:        category("Construction"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Tiles",
			CurrentQuantity: 750,
			MinQuantity:     200,
			Unit:            "boxes",
			PricePerUnit:    decimal.NewFromInt(30),
			Category:        category("Finishing"),
			LastUpdated:     now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "PVC Pipes",
			CurrentQuantity: 180,
			MinQuantity:     50,
			Unit:            "pcs",
			PricePerUnit:    decimal.NewFromInt(12),
			Category:        category("Plumbing"),
			LastUpdated:     now,
		},
	}
}

// Customers returns the sample customer book.
func Customers() []models.Customer {
	address := func(s string) *string { return &s }
	return []models.Customer{
		{
			ID:      uuid.NewString(),
			Name:    "Acme Construction",
			Contact: "+1 555 0101",
			Address: address("12 Quarry Road"),
		},
		{
			ID:      uuid.NewString(),
			Name:    "Hillside Builders",
			Contact: "+1 555 0102",
			Address: address("48 Summit Avenue"),
		},
		{
			ID:      uuid.NewString(),
			Name:    "Urban Developments Ltd",
			Contact: "+1 555 0103",
		},
	}
}

// Sales, BOQs, Productions and StockMovements all seed empty: the movement
// ledger must reconcile with material quantities from the first posting,
// which fabricated history cannot guarantee.
func Sales() []models.Sale { return []models.Sale{} }

func BOQs() []models.BOQ { return []models.BOQ{} }

func Productions() []models.Production { return []models.Production{} }

func StockMovements() []models.StockMovement { return []models.StockMovement{} }

// Defaults serializes every seed collection under its storage key, ready
// for Store.InitializeIfEmpty.
func Defaults() (map[string]string, error) {
	collections := map[string]interface{}{
		storage.KeyMaterials:      Materials(),
		storage.KeySales:          Sales(),
		storage.KeyBOQs:           BOQs(),
		storage.KeyProductions:    Productions(),
		storage.KeyStockMovements: StockMovements(),
		storage.KeyCustomers:      Customers(),
	}

	defaults := make(map[string]string, len(collections))
	for key, collection := range collections {
		raw, err := json.Marshal(collection)
		if err != nil {
			return nil, fmt.Errorf("encoding seed collection %s: %w", key, err)
		}
		defaults[key] = string(raw)
	}
	return defaults, nil
}
