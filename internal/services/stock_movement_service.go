package services

import (
	"errors"
	"fmt"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"
)

var (
	ErrMovementValidation = errors.New("stock movement data validation error")
)

// --- Stock Movement DTOs ---

type RecordMovementRequest struct {
	MaterialID string              `json:"material_id" binding:"required"`
	Type       models.MovementType `json:"type" binding:"required"`
	Quantity   float64             `json:"quantity" binding:"required"`
	Notes      *string             `json:"notes"`
}

type MovementFilter struct {
	MaterialID string
	Type       models.MovementType
}

// --- StockMovementService Interface ---

type StockMovementService interface {
	GetMovements(filter MovementFilter) []models.StockMovement
	GetMovementsForMaterial(materialID string) ([]models.StockMovement, error)
	// RecordManualMovement posts a movement entered by hand. Only RECEIPT,
	// RETURN and ADJUSTMENT are accepted here; SALE and
	// PRODUCTION_CONSUMPTION movements exist solely as side effects of
	// their orders.
	RecordManualMovement(req RecordMovementRequest) (*models.StockMovement, error)
}

// --- stockMovementService Implementation ---

type stockMovementService struct {
	movementRepo repositories.StockMovementRepository
	materialRepo repositories.MaterialRepository
	ledger       LedgerService
}

// NewStockMovementService creates a new instance of StockMovementService.
func NewStockMovementService(
	smr repositories.StockMovementRepository,
	mr repositories.MaterialRepository,
	ledger LedgerService,
) StockMovementService {
	return &stockMovementService{
		movementRepo: smr,
		materialRepo: mr,
		ledger:       ledger,
	}
}

func (s *stockMovementService) GetMovements(filter MovementFilter) []models.StockMovement {
	movements := s.movementRepo.List()
	if filter.MaterialID == "" && filter.Type == "" {
		return movements
	}

	out := []models.StockMovement{}
	for _, movement := range movements {
		if filter.MaterialID != "" && movement.MaterialID != filter.MaterialID {
			continue
		}
		if filter.Type != "" && movement.Type != filter.Type {
			continue
		}
		out = append(out, movement)
	}
	return out
}

func (s *stockMovementService) GetMovementsForMaterial(materialID string) ([]models.StockMovement, error) {
	if _, err := s.materialRepo.GetByID(materialID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, materialID)
		}
		return nil, fmt.Errorf("failed to read material: %w", err)
	}
	return s.movementRepo.ListForMaterial(materialID), nil
}

func (s *stockMovementService) RecordManualMovement(req RecordMovementRequest) (*models.StockMovement, error) {
	var quantity float64

	switch req.Type {
	case models.MovementReceipt, models.MovementReturn:
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s quantity must be positive", ErrMovementValidation, req.Type)
		}
		quantity = req.Quantity
	case models.MovementAdjustment:
		if req.Quantity == 0 {
			return nil, fmt.Errorf("%w: adjustment quantity cannot be zero", ErrMovementValidation)
		}
		quantity = req.Quantity
	case models.MovementSale, models.MovementProductionConsumption:
		return nil, fmt.Errorf("%w: %s movements are recorded through their orders", ErrMovementValidation, req.Type)
	default:
		return nil, fmt.Errorf("%w: unknown movement type %q", ErrMovementValidation, req.Type)
	}

	movement, err := s.ledger.PostMovement(req.MaterialID, quantity, req.Type, nil, req.Notes)
	if err != nil {
		return nil, err
	}
	return movement, nil
}
