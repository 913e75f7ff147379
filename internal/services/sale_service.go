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
	ErrSaleNotFound   = errors.New("sale not found")
	ErrSaleValidation = errors.New("sale data validation error")
	ErrDateFormat     = errors.New("invalid date format, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// --- Sale DTOs ---

type SaleItemRequest struct {
	MaterialID string           `json:"material_id" binding:"required"`
	Quantity   float64          `json:"quantity" binding:"required,gt=0"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
}

type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	Date       string            `json:"date"`
	Status     models.Status     `json:"status"`
	Items      []SaleItemRequest `json:"items" binding:"required"`
	Notes      *string           `json:"notes"`
}

type UpdateSaleRequest struct {
	CustomerID *string            `json:"customer_id"`
	Date       *string            `json:"date"`
	Status     *models.Status     `json:"status"`
	Items      *[]SaleItemRequest `json:"items"`
	Notes      *string            `json:"notes"`
}

// --- SaleService Interface ---

type SaleService interface {
	CreateSale(req CreateSaleRequest) (*models.Sale, error)
	GetSales() []models.Sale
	GetSaleByID(id string) (*models.Sale, error)
	UpdateSale(id string, req UpdateSaleRequest) (*models.Sale, error)
	DeleteSale(id string) error
}

// --- saleService Implementation ---

type saleService struct {
	saleRepo     repositories.SaleRepository
	materialRepo repositories.MaterialRepository
	customerRepo repositories.CustomerRepository
	movementRepo repositories.StockMovementRepository
	ledger       LedgerService
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(
	sr repositories.SaleRepository,
	mr repositories.MaterialRepository,
	cr repositories.CustomerRepository,
	smr repositories.StockMovementRepository,
	ledger LedgerService,
) SaleService {
	return &saleService{
		saleRepo:     sr,
		materialRepo: mr,
		customerRepo: cr,
		movementRepo: smr,
		ledger:       ledger,
	}
}

func (s *saleService) CreateSale(req CreateSaleRequest) (*models.Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: sale must contain at least one item", ErrSaleValidation)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if status != models.StatusPending && status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: a sale can only be created as PENDING or COMPLETED", ErrSaleValidation)
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDateFormat, req.Date)
		}
		date = parsed
	}

	customer, err := s.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to read customer: %w", err)
	}

	items, totalAmount, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	sale := models.Sale{
		OrderNumber:  s.saleRepo.NextOrderNumber(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Date:         date,
		Status:       status,
		Items:        items,
		TotalAmount:  totalAmount,
		Notes:        req.Notes,
	}

	created, err := s.saleRepo.Add(sale)
	if err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	// A sale entering COMPLETED is the moment stock actually leaves.
	if created.Status == models.StatusCompleted {
		if err := s.postSaleMovements(created); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *saleService) GetSales() []models.Sale {
	return s.saleRepo.List()
}

func (s *saleService) GetSaleByID(id string) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSaleNotFound, id)
		}
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}
	return sale, nil
}

func (s *saleService) UpdateSale(id string, req UpdateSaleRequest) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSaleNotFound, id)
		}
		return nil, fmt.Errorf("failed to find sale for update: %w", err)
	}

	previousStatus := sale.Status

	if req.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(*req.CustomerID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, *req.CustomerID)
			}
			return nil, fmt.Errorf("failed to read customer: %w", err)
		}
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDateFormat, *req.Date)
		}
		sale.Date = parsed
	}
	if req.Notes != nil {
		sale.Notes = req.Notes
	}
	if req.Items != nil {
		// Once stock has moved the line items are frozen; edits would
		// desynchronize the order from its ledger entries.
		if previousStatus != models.StatusPending {
			return nil, fmt.Errorf("%w: items can only be changed while the sale is PENDING", ErrSaleValidation)
		}
		if len(*req.Items) == 0 {
			return nil, fmt.Errorf("%w: sale must contain at least one item", ErrSaleValidation)
		}
		items, totalAmount, err := s.buildItems(*req.Items)
		if err != nil {
			return nil, err
		}
		sale.Items = items
		sale.TotalAmount = totalAmount
	}
	if req.Status != nil && *req.Status != previousStatus {
		if err := validateSaleTransition(previousStatus, *req.Status); err != nil {
			return nil, err
		}
		sale.Status = *req.Status
	}

	updated, err := s.saleRepo.Update(*sale)
	if err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	switch {
	case updated.Status == models.StatusCompleted && previousStatus != models.StatusCompleted:
		if !s.hasMovements(updated.ID, models.MovementSale) {
			if err := s.postSaleMovements(updated); err != nil {
				return nil, err
			}
		}
	case updated.Status == models.StatusCancelled && previousStatus == models.StatusCompleted:
		// Cancelling a completed sale brings the goods back.
		if !s.hasMovements(updated.ID, models.MovementReturn) {
			if err := s.postReturnMovements(updated); err != nil {
				return nil, err
			}
		}
	}

	return updated, nil
}

func (s *saleService) DeleteSale(id string) error {
	if _, err := s.saleRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrSaleNotFound, id)
		}
		return fmt.Errorf("failed to find sale for deletion: %w", err)
	}

	// Deletion removes the record only. Any movements it caused remain in
	// the ledger; cancel the sale first if the stock should come back.
	if err := s.saleRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}

// buildItems resolves each requested line against the material catalog,
// defaults the unit price from the catalog when the request omits it, and
// totals the order.
func (s *saleService) buildItems(reqItems []SaleItemRequest) ([]models.SaleItem, decimal.Decimal, error) {
	items := make([]models.SaleItem, 0, len(reqItems))
	totalAmount := decimal.Zero

	for _, reqItem := range reqItems {
		if reqItem.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: item quantity must be positive", ErrSaleValidation)
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
				return nil, decimal.Zero, fmt.Errorf("%w: unit price cannot be negative", ErrSaleValidation)
			}
			unitPrice = *reqItem.UnitPrice
		}

		totalPrice := unitPrice.Mul(decimal.NewFromFloat(reqItem.Quantity))
		items = append(items, models.SaleItem{
			ID:           uuid.NewString(),
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Quantity:     reqItem.Quantity,
			UnitPrice:    unitPrice,
			TotalPrice:   totalPrice,
		})
		totalAmount = totalAmount.Add(totalPrice)
	}

	return items, totalAmount, nil
}

func (s *saleService) postSaleMovements(sale *models.Sale) error {
	referenceID := sale.ID
	notes := fmt.Sprintf("Sale Order: %s", sale.OrderNumber)

	for _, item := range sale.Items {
		if _, err := s.ledger.PostMovement(item.MaterialID, -item.Quantity, models.MovementSale, &referenceID, &notes); err != nil {
			return fmt.Errorf("failed to post stock movement for sale %s: %w", sale.OrderNumber, err)
		}
	}
	return nil
}

func (s *saleService) postReturnMovements(sale *models.Sale) error {
	referenceID := sale.ID
	notes := fmt.Sprintf("Sale Order Cancelled: %s", sale.OrderNumber)

	for _, item := range sale.Items {
		if _, err := s.ledger.PostMovement(item.MaterialID, item.Quantity, models.MovementReturn, &referenceID, &notes); err != nil {
			return fmt.Errorf("failed to post return movement for sale %s: %w", sale.OrderNumber, err)
		}
	}
	return nil
}

// hasMovements reports whether the ledger already carries movements of the
// given type for this sale. It is the guard against double-posting when a
// status is resubmitted.
func (s *saleService) hasMovements(referenceID string, movementType models.MovementType) bool {
	for _, movement := range s.movementRepo.ListForReference(referenceID) {
		if movement.Type == movementType {
			return true
		}
	}
	return false
}

func validateSaleTransition(from, to models.Status) error {
	switch from {
	case models.StatusPending:
		if to == models.StatusCompleted || to == models.StatusCancelled {
			return nil
		}
	case models.StatusCompleted:
		if to == models.StatusCancelled {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot change sale status from %s to %s", ErrSaleValidation, from, to)
}
