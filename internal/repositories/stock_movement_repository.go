package repositories

import (
	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"
)

// StockMovementRepository is append-and-query only. The movement ledger is
// immutable history: there is deliberately no update or delete.
type StockMovementRepository interface {
	List() []models.StockMovement
	ListForMaterial(materialID string) []models.StockMovement
	// ListForReference returns the movements caused by a given sale or
	// production, identified by its reference id.
	ListForReference(referenceID string) []models.StockMovement
	Append(movement models.StockMovement) (*models.StockMovement, error)
}

type stockMovementRepository struct {
	ds *Dataset
}

// NewStockMovementRepository creates a new instance of StockMovementRepository.
func NewStockMovementRepository(ds *Dataset) StockMovementRepository {
	return &stockMovementRepository{ds: ds}
}

func (r *stockMovementRepository) List() []models.StockMovement {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := make([]models.StockMovement, len(r.ds.stockMovements))
	copy(out, r.ds.stockMovements)
	return out
}

func (r *stockMovementRepository) ListForMaterial(materialID string) []models.StockMovement {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := []models.StockMovement{}
	for _, movement := range r.ds.stockMovements {
		if movement.MaterialID == materialID {
			out = append(out, movement)
		}
	}
	return out
}

func (r *stockMovementRepository) ListForReference(referenceID string) []models.StockMovement {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := []models.StockMovement{}
	for _, movement := range r.ds.stockMovements {
		if movement.ReferenceID != nil && *movement.ReferenceID == referenceID {
			out = append(out, movement)
		}
	}
	return out
}

func (r *stockMovementRepository) Append(movement models.StockMovement) (*models.StockMovement, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	next := make([]models.StockMovement, len(r.ds.stockMovements), len(r.ds.stockMovements)+1)
	copy(next, r.ds.stockMovements)
	next = append(next, movement)

	if err := r.ds.persist(storage.KeyStockMovements, next); err != nil {
		return nil, err
	}
	r.ds.stockMovements = next
	return &movement, nil
}
