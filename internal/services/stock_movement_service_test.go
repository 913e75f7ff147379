package services_test

import (
	"testing"

	"buildops_backend/internal/models"
	"buildops_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordManualMovement_Receipt(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	movement, err := f.movements.RecordManualMovement(services.RecordMovementRequest{
		MaterialID: material.ID,
		Type:       models.MovementReceipt,
		Quantity:   40,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(140), movement.AfterQuantity)
	assert.Nil(t, movement.ReferenceID)
	assert.Equal(t, float64(140), f.currentQuantity(t, material.ID))
}

func TestRecordManualMovement_SignRules(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	// Receipts and returns must be positive.
	_, err := f.movements.RecordManualMovement(services.RecordMovementRequest{
		MaterialID: material.ID,
		Type:       models.MovementReceipt,
		Quantity:   -5,
	})
	require.ErrorIs(t, err, services.ErrMovementValidation)

	_, err = f.movements.RecordManualMovement(services.RecordMovementRequest{
		MaterialID: material.ID,
		Type:       models.MovementReturn,
		Quantity:   -5,
	})
	require.ErrorIs(t, err, services.ErrMovementValidation)

	// Adjustments may be negative but not zero.
	_, err = f.movements.RecordManualMovement(services.RecordMovementRequest{
		MaterialID: material.ID,
		Type:       models.MovementAdjustment,
		Quantity:   0,
	})
	require.ErrorIs(t, err, services.ErrMovementValidation)

	movement, err := f.movements.RecordManualMovement(services.RecordMovementRequest{
		MaterialID: material.ID,
		Type:       models.MovementAdjustment,
		Quantity:   -3,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(97), movement.AfterQuantity)
}

func TestRecordManualMovement_OrderBoundTypesRejected(t *testing.T) {
	f := newFixture(t)
	material := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")

	for _, movementType := range []models.MovementType{models.MovementSale, models.MovementProductionConsumption} {
		_, err := f.movements.RecordManualMovement(services.RecordMovementRequest{
			MaterialID: material.ID,
			Type:       movementType,
			Quantity:   5,
		})
		require.ErrorIs(t, err, services.ErrMovementValidation, "type %s", movementType)
	}
	assert.Empty(t, f.movementRepo.List())
}

func TestGetMovements_Filters(t *testing.T) {
	f := newFixture(t)
	cement := f.mustCreateMaterial(t, "Cement", 100, 10, "150.00")
	sand := f.mustCreateMaterial(t, "Sand", 50, 5, "20.00")

	_, err := f.ledger.PostMovement(cement.ID, 10, models.MovementReceipt, nil, nil)
	require.NoError(t, err)
	_, err = f.ledger.PostMovement(cement.ID, -4, models.MovementAdjustment, nil, nil)
	require.NoError(t, err)
	_, err = f.ledger.PostMovement(sand.ID, 7, models.MovementReceipt, nil, nil)
	require.NoError(t, err)

	assert.Len(t, f.movements.GetMovements(services.MovementFilter{}), 3)
	assert.Len(t, f.movements.GetMovements(services.MovementFilter{MaterialID: cement.ID}), 2)
	assert.Len(t, f.movements.GetMovements(services.MovementFilter{Type: models.MovementReceipt}), 2)
	assert.Len(t, f.movements.GetMovements(services.MovementFilter{MaterialID: cement.ID, Type: models.MovementReceipt}), 1)
}

func TestGetMovementsForMaterial_UnknownMaterial(t *testing.T) {
	f := newFixture(t)

	_, err := f.movements.GetMovementsForMaterial("no-such-material")
	require.ErrorIs(t, err, services.ErrMaterialNotFound)
}
