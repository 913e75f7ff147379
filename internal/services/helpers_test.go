package services_test

import (
	"path/filepath"
	"testing"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"
	"buildops_backend/internal/services"
	"buildops_backend/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fixture wires the full service stack over a throwaway store.
type fixture struct {
	materialRepo repositories.MaterialRepository
	movementRepo repositories.StockMovementRepository

	ledger      services.LedgerService
	materials   services.MaterialService
	movements   services.StockMovementService
	sales       services.SaleService
	boqs        services.BOQService
	productions services.ProductionService
	customers   services.CustomerService
	reports     services.ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ds := repositories.Load(store)

	materialRepo := repositories.NewMaterialRepository(ds)
	movementRepo := repositories.NewStockMovementRepository(ds)
	saleRepo := repositories.NewSaleRepository(ds)
	boqRepo := repositories.NewBOQRepository(ds)
	productionRepo := repositories.NewProductionRepository(ds)
	customerRepo := repositories.NewCustomerRepository(ds)

	ledger := services.NewLedgerService(materialRepo, movementRepo)

	return &fixture{
		materialRepo: materialRepo,
		movementRepo: movementRepo,
		ledger:       ledger,
		materials:    services.NewMaterialService(materialRepo, movementRepo, ledger),
		movements:    services.NewStockMovementService(movementRepo, materialRepo, ledger),
		sales:        services.NewSaleService(saleRepo, materialRepo, customerRepo, movementRepo, ledger),
		boqs:         services.NewBOQService(boqRepo, materialRepo),
		productions:  services.NewProductionService(productionRepo, materialRepo, movementRepo, ledger),
		customers:    services.NewCustomerService(customerRepo),
		reports:      services.NewReportService(materialRepo, saleRepo, productionRepo),
	}
}

func (f *fixture) mustCreateMaterial(t *testing.T, name string, quantity, minQuantity float64, price string) *models.Material {
	t.Helper()

	material, err := f.materials.CreateMaterial(services.CreateMaterialRequest{
		Name:            name,
		CurrentQuantity: quantity,
		MinQuantity:     minQuantity,
		Unit:            "kg",
		PricePerUnit:    decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return material
}

func (f *fixture) mustCreateCustomer(t *testing.T, name string) *models.Customer {
	t.Helper()

	customer, err := f.customers.CreateCustomer(services.CreateCustomerRequest{
		Name:    name,
		Contact: "+66 81 000 0000",
	})
	require.NoError(t, err)
	return customer
}

func (f *fixture) currentQuantity(t *testing.T, materialID string) float64 {
	t.Helper()

	material, err := f.materialRepo.GetByID(materialID)
	require.NoError(t, err)
	return material.CurrentQuantity
}
