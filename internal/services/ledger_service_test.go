package services_test

import (
	"testing"

	"buildops_backend/internal/models"
	"buildops_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMovement_RecordsSnapshotsAndUpdatesMaterial(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	movement, err := f.ledger.PostMovement(material.ID, -10, models.MovementSale, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.MovementSale, movement.Type)
	assert.Equal(t, float64(-10), movement.Quantity)
	assert.Equal(t, float64(100), movement.BeforeQuantity)
	assert.Equal(t, float64(90), movement.AfterQuantity)
	assert.Equal(t, float64(90), f.currentQuantity(t, material.ID))
}

func TestPostMovement_ReceiptIncreasesStock(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Sand", 30, 5, "20.00")

	movement, err := f.ledger.PostMovement(material.ID, 70, models.MovementReceipt, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, float64(30), movement.BeforeQuantity)
	assert.Equal(t, float64(100), movement.AfterQuantity)
	assert.Equal(t, float64(100), f.currentQuantity(t, material.ID))
}

func TestPostMovement_UnknownMaterialAppendsNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.PostMovement("no-such-material", 5, models.MovementReceipt, nil, nil)
	require.ErrorIs(t, err, services.ErrMaterialNotFound)

	assert.Empty(t, f.movementRepo.List())
}

func TestPostMovement_AllowsOverdraw(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Gravel", 10, 2, "35.00")

	movement, err := f.ledger.PostMovement(material.ID, -25, models.MovementSale, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, float64(-15), movement.AfterQuantity)
	assert.Equal(t, float64(-15), f.currentQuantity(t, material.ID))
}

func TestPostMovement_QuantityIsReconstructableFromLedger(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Steel Rod", 50, 10, "220.00")

	_, err := f.ledger.PostMovement(material.ID, 20, models.MovementReceipt, nil, nil)
	require.NoError(t, err)
	_, err = f.ledger.PostMovement(material.ID, -35, models.MovementSale, nil, nil)
	require.NoError(t, err)
	_, err = f.ledger.PostMovement(material.ID, -5, models.MovementAdjustment, nil, nil)
	require.NoError(t, err)

	reconstructed := float64(50)
	for _, movement := range f.movementRepo.ListForMaterial(material.ID) {
		reconstructed += movement.Quantity
	}
	assert.Equal(t, reconstructed, f.currentQuantity(t, material.ID))
}
