package services

import (
	"errors"
	"fmt"
	"strings"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrMaterialValidation = errors.New("material data validation error")
	ErrMaterialInUse      = errors.New("material has recorded stock movements and cannot be deleted")
)

// --- Material DTOs ---

type CreateMaterialRequest struct {
	Name            string          `json:"name" binding:"required"`
	CurrentQuantity float64         `json:"current_quantity" binding:"gte=0"`
	MinQuantity     float64         `json:"min_quantity" binding:"gte=0"`
	Unit            string          `json:"unit" binding:"required"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	Category        *string         `json:"category"`
}

type UpdateMaterialRequest struct {
	Name            *string          `json:"name"`
	CurrentQuantity *float64         `json:"current_quantity"`
	MinQuantity     *float64         `json:"min_quantity"`
	Unit            *string          `json:"unit"`
	PricePerUnit    *decimal.Decimal `json:"price_per_unit"`
	Category        *string          `json:"category"`
}

// --- MaterialService Interface ---

type MaterialService interface {
	CreateMaterial(req CreateMaterialRequest) (*models.Material, error)
	GetMaterials() []models.Material
	GetMaterialByID(id string) (*models.Material, error)
	GetLowStockMaterials() []models.Material
	UpdateMaterial(id string, req UpdateMaterialRequest) (*models.Material, error)
	DeleteMaterial(id string) error
}

// --- materialService Implementation ---

type materialService struct {
	materialRepo repositories.MaterialRepository
	movementRepo repositories.StockMovementRepository
	ledger       LedgerService
}

// NewMaterialService creates a new instance of MaterialService.
func NewMaterialService(
	mr repositories.MaterialRepository,
	smr repositories.StockMovementRepository,
	ledger LedgerService,
) MaterialService {
	return &materialService{
		materialRepo: mr,
		movementRepo: smr,
		ledger:       ledger,
	}
}

func (s *materialService) CreateMaterial(req CreateMaterialRequest) (*models.Material, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrMaterialValidation)
	}
	if req.PricePerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: price per unit cannot be negative", ErrMaterialValidation)
	}

	material := models.Material{
		Name:            strings.TrimSpace(req.Name),
		CurrentQuantity: req.CurrentQuantity,
		MinQuantity:     req.MinQuantity,
		Unit:            req.Unit,
		PricePerUnit:    req.PricePerUnit,
		Category:        req.Category,
	}

	created, err := s.materialRepo.Add(material)
	if err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	return created, nil
}

func (s *materialService) GetMaterials() []models.Material {
	return s.materialRepo.List()
}

func (s *materialService) GetMaterialByID(id string) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, id)
		}
		return nil, fmt.Errorf("failed to get material by ID: %w", err)
	}
	return material, nil
}

func (s *materialService) GetLowStockMaterials() []models.Material {
	return s.materialRepo.LowStock()
}

// UpdateMaterial applies field edits. A change to the on-hand quantity is
// not written directly: it goes through the ledger as an ADJUSTMENT
// movement, so even manual corrections leave an auditable ledger entry and
// the ledger-sum invariant holds for every quantity the system has ever
// shown.
func (s *materialService) UpdateMaterial(id string, req UpdateMaterialRequest) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, id)
		}
		return nil, fmt.Errorf("failed to find material for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrMaterialValidation)
		}
		material.Name = strings.TrimSpace(*req.Name)
	}
	if req.MinQuantity != nil {
		if *req.MinQuantity < 0 {
			return nil, fmt.Errorf("%w: minimum quantity cannot be negative", ErrMaterialValidation)
		}
		material.MinQuantity = *req.MinQuantity
	}
	if req.Unit != nil {
		material.Unit = *req.Unit
	}
	if req.PricePerUnit != nil {
		if req.PricePerUnit.IsNegative() {
			return nil, fmt.Errorf("%w: price per unit cannot be negative", ErrMaterialValidation)
		}
		material.PricePerUnit = *req.PricePerUnit
	}
	if req.Category != nil {
		material.Category = req.Category
	}

	updated, err := s.materialRepo.Update(*material)
	if err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	if req.CurrentQuantity != nil && *req.CurrentQuantity != updated.CurrentQuantity {
		delta := *req.CurrentQuantity - updated.CurrentQuantity
		notes := "Manual stock correction"
		if _, err := s.ledger.PostMovement(id, delta, models.MovementAdjustment, nil, &notes); err != nil {
			return nil, fmt.Errorf("failed to post adjustment for material %s: %w", updated.Name, err)
		}
		return s.materialRepo.GetByID(id)
	}

	return updated, nil
}

func (s *materialService) DeleteMaterial(id string) error {
	if _, err := s.materialRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrMaterialNotFound, id)
		}
		return fmt.Errorf("failed to find material for deletion: %w", err)
	}

	// A material with ledger history stays: deleting it would orphan the
	// movements that reconstruct its quantity.
	if len(s.movementRepo.ListForMaterial(id)) > 0 {
		return ErrMaterialInUse
	}

	if err := s.materialRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return nil
}
