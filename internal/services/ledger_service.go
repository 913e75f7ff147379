package services

import (
	"errors"
	"fmt"
	"time"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
)

// LedgerService is the stock ledger engine. It is the only component that
// appends stock movements and the only one allowed to change a material's
// on-hand quantity. Every change leaves exactly one movement whose
// before/after snapshots bracket it, so a material's current quantity is
// always reconstructable as its initial quantity plus the sum of its
// movement deltas.
type LedgerService interface {
	// PostMovement applies a signed quantity delta to a material and
	// appends the movement record. Sign convention: RECEIPT and RETURN
	// post positive deltas, SALE and PRODUCTION_CONSUMPTION post negative
	// deltas (callers pass the already-negated quantity), ADJUSTMENT may
	// be either sign. The resulting quantity is not clamped; overdrawing
	// below zero is recorded, not rejected.
	PostMovement(materialID string, quantity float64, movementType models.MovementType, referenceID, notes *string) (*models.StockMovement, error)
}

type ledgerService struct {
	materialRepo repositories.MaterialRepository
	movementRepo repositories.StockMovementRepository
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	mr repositories.MaterialRepository,
	smr repositories.StockMovementRepository,
) LedgerService {
	return &ledgerService{
		materialRepo: mr,
		movementRepo: smr,
	}
}

func (s *ledgerService) PostMovement(materialID string, quantity float64, movementType models.MovementType, referenceID, notes *string) (*models.StockMovement, error) {
	material, err := s.materialRepo.GetByID(materialID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, materialID)
		}
		return nil, fmt.Errorf("failed to read material %s: %w", materialID, err)
	}

	beforeQuantity := material.CurrentQuantity
	afterQuantity := beforeQuantity + quantity

	movement := models.StockMovement{
		ID:             uuid.NewString(),
		MaterialID:     material.ID,
		MaterialName:   material.Name,
		Type:           movementType,
		Quantity:       quantity,
		BeforeQuantity: beforeQuantity,
		AfterQuantity:  afterQuantity,
		Date:           time.Now(),
		ReferenceID:    referenceID,
		Notes:          notes,
	}

	if _, err := s.movementRepo.Append(movement); err != nil {
		return nil, fmt.Errorf("failed to append stock movement for material %s: %w", material.Name, err)
	}

	// Write the new quantity back through the repository update path so
	// the persistence write-through and LastUpdated stamping stay uniform.
	material.CurrentQuantity = afterQuantity
	if _, err := s.materialRepo.Update(*material); err != nil {
		// The movement is already durable at this point; surface the
		// failure so the caller knows the material write-back is behind.
		return nil, fmt.Errorf("failed to write back quantity for material %s: %w", material.Name, err)
	}

	return &movement, nil
}
