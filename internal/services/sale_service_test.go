package services_test

import (
	"testing"

	"buildops_backend/internal/models"
	"buildops_backend/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSale_CompletedDeductsStock(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.StatusCompleted,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "SO-1", sale.OrderNumber)
	assert.Equal(t, customer.Name, sale.CustomerName)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("1500.00")),
		"total = quantity x unit price, got %s", sale.TotalAmount)
	assert.Equal(t, float64(90), f.currentQuantity(t, material.ID))

	movements := f.movementRepo.ListForReference(sale.ID)
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementSale, movements[0].Type)
	assert.Equal(t, float64(-10), movements[0].Quantity)
	require.NotNil(t, movements[0].Notes)
	assert.Equal(t, "Sale Order: SO-1", *movements[0].Notes)
}

func TestCreateSale_MultipleLinesOfSameMaterialChainSnapshots(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Sand", 50, 5, "20.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.StatusCompleted,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 5},
			{MaterialID: material.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	movements := f.movementRepo.ListForReference(sale.ID)
	require.Len(t, movements, 2)
	assert.Equal(t, float64(50), movements[0].BeforeQuantity)
	assert.Equal(t, float64(45), movements[0].AfterQuantity)
	assert.Equal(t, float64(45), movements[1].BeforeQuantity)
	assert.Equal(t, float64(42), movements[1].AfterQuantity)
	assert.Equal(t, float64(42), f.currentQuantity(t, material.ID))
}

func TestCreateSale_PendingMovesNoStock(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, sale.Status)
	assert.Equal(t, float64(100), f.currentQuantity(t, material.ID))
	assert.Empty(t, f.movementRepo.ListForReference(sale.ID))
}

func TestCreateSale_RequiresItems(t *testing.T) {
	f := newFixture(t)
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	_, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Items:      []services.SaleItemRequest{},
	})
	require.ErrorIs(t, err, services.ErrSaleValidation)
}

func TestCreateSale_UnknownCustomerRejected(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	_, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: "no-such-customer",
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestUpdateSale_CompletionPostsExactlyOnce(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	completed := models.StatusCompleted
	updated, err := f.sales.UpdateSale(sale.ID, services.UpdateSaleRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, float64(90), f.currentQuantity(t, material.ID))

	// Resubmitting the same status must not deduct again.
	_, err = f.sales.UpdateSale(sale.ID, services.UpdateSaleRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, float64(90), f.currentQuantity(t, material.ID))
	assert.Len(t, f.movementRepo.ListForReference(sale.ID), 1)
}

func TestUpdateSale_CancellingCompletedSaleReturnsStock(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.StatusCompleted,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)
	require.Equal(t, float64(90), f.currentQuantity(t, material.ID))

	cancelled := models.StatusCancelled
	_, err = f.sales.UpdateSale(sale.ID, services.UpdateSaleRequest{Status: &cancelled})
	require.NoError(t, err)

	assert.Equal(t, float64(100), f.currentQuantity(t, material.ID))

	movements := f.movementRepo.ListForReference(sale.ID)
	require.Len(t, movements, 2)
	assert.Equal(t, models.MovementSale, movements[0].Type)
	assert.Equal(t, models.MovementReturn, movements[1].Type)
	assert.Equal(t, float64(10), movements[1].Quantity)
}

func TestUpdateSale_ItemsFrozenAfterCompletion(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.StatusCompleted,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	newItems := []services.SaleItemRequest{{MaterialID: material.ID, Quantity: 99}}
	_, err = f.sales.UpdateSale(sale.ID, services.UpdateSaleRequest{Items: &newItems})
	require.ErrorIs(t, err, services.ErrSaleValidation)
}

func TestUpdateSale_RejectsRevertingCompletedToPending(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.StatusCompleted,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	pending := models.StatusPending
	_, err = f.sales.UpdateSale(sale.ID, services.UpdateSaleRequest{Status: &pending})
	require.ErrorIs(t, err, services.ErrSaleValidation)
}

func TestDeleteSale_LeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	sale, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Status:     models.StatusCompleted,
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.sales.DeleteSale(sale.ID))

	_, err = f.sales.GetSaleByID(sale.ID)
	require.ErrorIs(t, err, services.ErrSaleNotFound)

	// History and stock stay as they were at deletion time.
	assert.Len(t, f.movementRepo.ListForReference(sale.ID), 1)
	assert.Equal(t, float64(90), f.currentQuantity(t, material.ID))
}

func TestCreateSale_OrderNumbersIncrement(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	for i, want := range []string{"SO-1", "SO-2", "SO-3"} {
		sale, err := f.sales.CreateSale(services.CreateSaleRequest{
			CustomerID: customer.ID,
			Items: []services.SaleItemRequest{
				{MaterialID: material.ID, Quantity: 1},
			},
		})
		require.NoError(t, err, "sale %d", i)
		assert.Equal(t, want, sale.OrderNumber)
	}
}

func TestCreateSale_BadDateRejected(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	customer := f.mustCreateCustomer(t, "Somchai Construction")

	_, err := f.sales.CreateSale(services.CreateSaleRequest{
		CustomerID: customer.ID,
		Date:       "15/01/2026",
		Items: []services.SaleItemRequest{
			{MaterialID: material.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, services.ErrDateFormat)
}
