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
	ErrProductionNotFound   = errors.New("production not found")
	ErrProductionValidation = errors.New("production data validation error")
)

// --- Production DTOs ---

type ProductionMaterialRequest struct {
	MaterialID      string   `json:"material_id" binding:"required"`
	PlannedQuantity float64  `json:"planned_quantity" binding:"required,gt=0"`
	ActualQuantity  *float64 `json:"actual_quantity"`
}

type CreateProductionRequest struct {
	Description string                      `json:"description" binding:"required"`
	StartDate   string                      `json:"start_date"`
	Status      models.Status               `json:"status"`
	Materials   []ProductionMaterialRequest `json:"materials" binding:"required"`
	Notes       *string                     `json:"notes"`
}

type UpdateProductionRequest struct {
	Description *string                      `json:"description"`
	StartDate   *string                      `json:"start_date"`
	Status      *models.Status               `json:"status"`
	Materials   *[]ProductionMaterialRequest `json:"materials"`
	Notes       *string                      `json:"notes"`
}

// --- ProductionService Interface ---

type ProductionService interface {
	CreateProduction(req CreateProductionRequest) (*models.Production, error)
	GetProductions() []models.Production
	GetProductionByID(id string) (*models.Production, error)
	UpdateProduction(id string, req UpdateProductionRequest) (*models.Production, error)
	DeleteProduction(id string) error
}

// --- productionService Implementation ---

type productionService struct {
	productionRepo repositories.ProductionRepository
	materialRepo   repositories.MaterialRepository
	movementRepo   repositories.StockMovementRepository
	ledger         LedgerService
}

// NewProductionService creates a new instance of ProductionService.
func NewProductionService(
	pr repositories.ProductionRepository,
	mr repositories.MaterialRepository,
	smr repositories.StockMovementRepository,
	ledger LedgerService,
) ProductionService {
	return &productionService{
		productionRepo: pr,
		materialRepo:   mr,
		movementRepo:   smr,
		ledger:         ledger,
	}
}

func (s *productionService) CreateProduction(req CreateProductionRequest) (*models.Production, error) {
	if len(req.Materials) == 0 {
		return nil, fmt.Errorf("%w: production must list at least one material", ErrProductionValidation)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: a production cannot be created as CANCELLED", ErrProductionValidation)
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDateFormat, req.StartDate)
		}
		startDate = parsed
	}

	materials, err := s.buildMaterials(req.Materials)
	if err != nil {
		return nil, err
	}

	production := models.Production{
		ProductionNumber: s.productionRepo.NextProductionNumber(),
		Description:      req.Description,
		StartDate:        startDate,
		Status:           status,
		Materials:        materials,
		Notes:            req.Notes,
	}
	if status == models.StatusCompleted {
		now := time.Now()
		production.EndDate = &now
	}

	created, err := s.productionRepo.Add(production)
	if err != nil {
		return nil, fmt.Errorf("failed to create production: %w", err)
	}

	// Stock is consumed as soon as work starts on the order.
	if created.Status == models.StatusInProgress || created.Status == models.StatusCompleted {
		if err := s.postConsumptionMovements(created); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *productionService) GetProductions() []models.Production {
	return s.productionRepo.List()
}

func (s *productionService) GetProductionByID(id string) (*models.Production, error) {
	production, err := s.productionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get production by ID: %w", err)
	}
	return production, nil
}

func (s *productionService) UpdateProduction(id string, req UpdateProductionRequest) (*models.Production, error) {
	production, err := s.productionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductionNotFound, id)
		}
		return nil, fmt.Errorf("failed to find production for update: %w", err)
	}

	previousStatus := production.Status

	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrProductionValidation)
		}
		production.Description = *req.Description
	}
	if req.StartDate != nil {
		parsed, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDateFormat, *req.StartDate)
		}
		production.StartDate = parsed
	}
	if req.Notes != nil {
		production.Notes = req.Notes
	}
	if req.Materials != nil {
		if previousStatus == models.StatusCompleted || previousStatus == models.StatusCancelled {
			return nil, fmt.Errorf("%w: materials can no longer be changed once the production is %s", ErrProductionValidation, previousStatus)
		}
		if len(*req.Materials) == 0 {
			return nil, fmt.Errorf("%w: production must list at least one material", ErrProductionValidation)
		}
		materials, err := s.buildMaterials(*req.Materials)
		if err != nil {
			return nil, err
		}
		production.Materials = materials
	}
	if req.Status != nil && *req.Status != previousStatus {
		if err := validateProductionTransition(previousStatus, *req.Status); err != nil {
			return nil, err
		}
		production.Status = *req.Status
		if *req.Status == models.StatusCompleted {
			now := time.Now()
			production.EndDate = &now
		}
	}

	updated, err := s.productionRepo.Update(*production)
	if err != nil {
		return nil, fmt.Errorf("failed to update production: %w", err)
	}

	startedConsuming := (updated.Status == models.StatusInProgress || updated.Status == models.StatusCompleted) &&
		previousStatus != models.StatusInProgress && previousStatus != models.StatusCompleted
	if startedConsuming && !s.hasConsumptionMovements(updated.ID) {
		if err := s.postConsumptionMovements(updated); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

func (s *productionService) DeleteProduction(id string) error {
	if _, err := s.productionRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrProductionNotFound, id)
		}
		return fmt.Errorf("failed to find production for deletion: %w", err)
	}

	if err := s.productionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete production: %w", err)
	}
	return nil
}

// buildMaterials resolves each requested line against the material catalog
// and denormalizes the name and unit onto the line.
func (s *productionService) buildMaterials(reqMaterials []ProductionMaterialRequest) ([]models.ProductionMaterial, error) {
	materials := make([]models.ProductionMaterial, 0, len(reqMaterials))

	for _, reqMaterial := range reqMaterials {
		if reqMaterial.PlannedQuantity <= 0 {
			return nil, fmt.Errorf("%w: planned quantity must be positive", ErrProductionValidation)
		}
		if reqMaterial.ActualQuantity != nil && *reqMaterial.ActualQuantity < 0 {
			return nil, fmt.Errorf("%w: actual quantity cannot be negative", ErrProductionValidation)
		}

		material, err := s.materialRepo.GetByID(reqMaterial.MaterialID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, reqMaterial.MaterialID)
			}
			return nil, fmt.Errorf("failed to read material: %w", err)
		}

		materials = append(materials, models.ProductionMaterial{
			ID:              uuid.NewString(),
			MaterialID:      material.ID,
			MaterialName:    material.Name,
			PlannedQuantity: reqMaterial.PlannedQuantity,
			ActualQuantity:  reqMaterial.ActualQuantity,
			Unit:            material.Unit,
		})
	}

	return materials, nil
}

// postConsumptionMovements deducts stock for every material line with a
// recorded actual quantity. Lines with no actual quantity, or an actual of
// zero, consumed nothing and are skipped.
func (s *productionService) postConsumptionMovements(production *models.Production) error {
	referenceID := production.ID
	notes := fmt.Sprintf("Production Order: %s", production.ProductionNumber)

	for _, line := range production.Materials {
		if line.ActualQuantity == nil || *line.ActualQuantity == 0 {
			continue
		}
		if _, err := s.ledger.PostMovement(line.MaterialID, -*line.ActualQuantity, models.MovementProductionConsumption, &referenceID, &notes); err != nil {
			return fmt.Errorf("failed to post consumption movement for production %s: %w", production.ProductionNumber, err)
		}
	}
	return nil
}

func (s *productionService) hasConsumptionMovements(referenceID string) bool {
	for _, movement := range s.movementRepo.ListForReference(referenceID) {
		if movement.Type == models.MovementProductionConsumption {
			return true
		}
	}
	return false
}

func validateProductionTransition(from, to models.Status) error {
	switch from {
	case models.StatusPending:
		if to == models.StatusInProgress || to == models.StatusCompleted || to == models.StatusCancelled {
			return nil
		}
	case models.StatusInProgress:
		if to == models.StatusCompleted || to == models.StatusCancelled {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot change production status from %s to %s", ErrProductionValidation, from, to)
}
