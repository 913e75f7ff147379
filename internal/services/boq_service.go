package services

import (
	"errors"
	"fmt"
	"time"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBOQNotFound   = errors.New("bill of quantities not found")
	ErrBOQValidation = errors.New("bill of quantities data validation error")
)

// --- BOQ DTOs ---

type BOQItemRequest struct {
	MaterialID    string           `json:"material_id" binding:"required"`
	Quantity      float64          `json:"quantity" binding:"required,gt=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	WastageFactor float64          `json:"wastage_factor"`
}

type CreateBOQRequest struct {
	ProjectName string           `json:"project_name" binding:"required"`
	Date        string           `json:"date"`
	Status      models.Status    `json:"status"`
	Items       []BOQItemRequest `json:"items" binding:"required"`
	Notes       *string          `json:"notes"`
}

type UpdateBOQRequest struct {
	ProjectName *string           `json:"project_name"`
	Date        *string           `json:"date"`
	Status      *models.Status    `json:"status"`
	Items       *[]BOQItemRequest `json:"items"`
	Notes       *string           `json:"notes"`
}

// --- BOQService Interface ---

type BOQService interface {
	CreateBOQ(req CreateBOQRequest) (*models.BOQ, error)
	GetBOQs() []models.BOQ
	GetBOQByID(id string) (*models.BOQ, error)
	UpdateBOQ(id string, req UpdateBOQRequest) (*models.BOQ, error)
	DeleteBOQ(id string) error
}

// --- boqService Implementation ---

// A BOQ is a planning document only. This service never talks to the
// ledger; costing a project moves no stock.
type boqService struct {
	boqRepo      repositories.BOQRepository
	materialRepo repositories.MaterialRepository
}

// NewBOQService creates a new instance of BOQService.
func NewBOQService(br repositories.BOQRepository, mr repositories.MaterialRepository) BOQService {
	return &boqService{
		boqRepo:      br,
		materialRepo: mr,
	}
}

func (s *boqService) CreateBOQ(req CreateBOQRequest) (*models.BOQ, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: bill of quantities must contain at least one item", ErrBOQValidation)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if status != models.StatusPending && status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: a bill of quantities can only be PENDING or COMPLETED", ErrBOQValidation)
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDateFormat, req.Date)
		}
		date = parsed
	}

	items, totalAmount, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	boq := models.BOQ{
		ProjectName: req.ProjectName,
		Date:        date,
		Status:      status,
		Items:       items,
		TotalAmount: totalAmount,
		Notes:       req.Notes,
	}

	created, err := s.boqRepo.Add(boq)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill of quantities: %w", err)
	}
	return created, nil
}

func (s *boqService) GetBOQs() []models.BOQ {
	return s.boqRepo.List()
}

func (s *boqService) GetBOQByID(id string) (*models.BOQ, error) {
	boq, err := s.boqRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBOQNotFound, id)
		}
		return nil, fmt.Errorf("failed to get bill of quantities by ID: %w", err)
	}
	return boq, nil
}

func (s *boqService) UpdateBOQ(id string, req UpdateBOQRequest) (*models.BOQ, error) {
	boq, err := s.boqRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBOQNotFound, id)
		}
		return nil, fmt.Errorf("failed to find bill of quantities for update: %w", err)
	}

	if req.ProjectName != nil {
		if *req.ProjectName == "" {
			return nil, fmt.Errorf("%w: project name cannot be empty", ErrBOQValidation)
		}
		boq.ProjectName = *req.ProjectName
	}
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDateFormat, *req.Date)
		}
		boq.Date = parsed
	}
	if req.Status != nil {
		if *req.Status != models.StatusPending && *req.Status != models.StatusCompleted {
			return nil, fmt.Errorf("%w: a bill of quantities can only be PENDING or COMPLETED", ErrBOQValidation)
		}
		boq.Status = *req.Status
	}
	if req.Notes != nil {
		boq.Notes = req.Notes
	}
	if req.Items != nil {
		if len(*req.Items) == 0 {
			return nil, fmt.Errorf("%w: bill of quantities must contain at least one item", ErrBOQValidation)
		}
		items, totalAmount, err := s.buildItems(*req.Items)
		if err != nil {
			return nil, err
		}
		boq.Items = items
		boq.TotalAmount = totalAmount
	}

	updated, err := s.boqRepo.Update(*boq)
	if err != nil {
		return nil, fmt.Errorf("failed to update bill of quantities: %w", err)
	}
	return updated, nil
}

func (s *boqService) DeleteBOQ(id string) error {
	if _, err := s.boqRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrBOQNotFound, id)
		}
		return fmt.Errorf("failed to find bill of quantities for deletion: %w", err)
	}

	if err := s.boqRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bill of quantities: %w", err)
	}
	return nil
}

// buildItems resolves each line against the material catalog and costs it
// as quantity x unit price x wastage factor. A missing wastage factor
// defaults to 1 (no wastage); anything below 1 is rejected because wastage
// can only inflate the required amount.
func (s *boqService) buildItems(reqItems []BOQItemRequest) ([]models.BOQItem, decimal.Decimal, error) {
	items := make([]models.BOQItem, 0, len(reqItems))
	totalAmount := decimal.Zero

	for _, reqItem := range reqItems {
		if reqItem.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: item quantity must be positive", ErrBOQValidation)
		}

		wastageFactor := reqItem.WastageFactor
		if wastageFactor == 0 {
			wastageFactor = 1
		}
		if wastageFactor < 1 {
			return nil, decimal.Zero, fmt.Errorf("%w: wastage factor must be at least 1", ErrBOQValidation)
		}

		material, err := s.materialRepo.GetByID(reqItem.MaterialID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrMaterialNotFound, reqItem.MaterialID)
			}
			return nil, decimal.Zero, fmt.Errorf("failed to read material: %w", err)
		}

		unitPrice := material.PricePerUnit
		if reqItem.UnitPrice != nil {
			if reqItem.UnitPrice.IsNegative() {
				return nil, decimal.Zero, fmt.Errorf("%w: unit price cannot be negative", ErrBOQValidation)
			}
			unitPrice = *reqItem.UnitPrice
		}

		totalPrice := unitPrice.
			Mul(decimal.NewFromFloat(reqItem.Quantity)).
			Mul(decimal.NewFromFloat(wastageFactor))
		items = append(items, models.BOQItem{
			ID:            uuid.NewString(),
			MaterialID:    material.ID,
			MaterialName:  material.Name,
			Quantity:      reqItem.Quantity,
			Unit:          material.Unit,
			UnitPrice:     unitPrice,
			WastageFactor: wastageFactor,
			TotalPrice:    totalPrice,
		})
		totalAmount = totalAmount.Add(totalPrice)
	}

	return items, totalAmount, nil
}
