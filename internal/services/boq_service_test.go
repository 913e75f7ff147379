package services_test

import (
	"testing"

	"buildops_backend/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBOQ_WastageFactorInflatesCost(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	wastage := 1.1
	boq, err := f.boqs.CreateBOQ(services.CreateBOQRequest{
		ProjectName: "Warehouse extension",
		Items: []services.BOQItemRequest{
			{MaterialID: material.ID, Quantity: 10, WastageFactor: wastage},
		},
	})
	require.NoError(t, err)

	// 10 x 150.00 x 1.1
	want := decimal.RequireFromString("1650")
	assert.True(t, boq.TotalAmount.Equal(want), "got %s, want %s", boq.TotalAmount, want)
	require.Len(t, boq.Items, 1)
	assert.Equal(t, wastage, boq.Items[0].WastageFactor)
}

func TestCreateBOQ_MissingWastageDefaultsToOne(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Sand", 50, 5, "20.00")

	boq, err := f.boqs.CreateBOQ(services.CreateBOQRequest{
		ProjectName: "Warehouse extension",
		Items: []services.BOQItemRequest{
			{MaterialID: material.ID, Quantity: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(1), boq.Items[0].WastageFactor)
	assert.True(t, boq.TotalAmount.Equal(decimal.RequireFromString("80")))
}

func TestCreateBOQ_WastageBelowOneRejected(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Sand", 50, 5, "20.00")

	_, err := f.boqs.CreateBOQ(services.CreateBOQRequest{
		ProjectName: "Warehouse extension",
		Items: []services.BOQItemRequest{
			{MaterialID: material.ID, Quantity: 4, WastageFactor: 0.5},
		},
	})
	require.ErrorIs(t, err, services.ErrBOQValidation)
}

func TestCreateBOQ_NeverTouchesTheLedger(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	_, err := f.boqs.CreateBOQ(services.CreateBOQRequest{
		ProjectName: "Warehouse extension",
		Items: []services.BOQItemRequest{
			{MaterialID: material.ID, Quantity: 500},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(100), f.currentQuantity(t, material.ID))
	assert.Empty(t, f.movementRepo.List())
}
