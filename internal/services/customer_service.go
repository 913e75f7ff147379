package services

import (
	"errors"
	"fmt"
	"strings"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerValidation = errors.New("customer data validation error")
)

// --- Customer DTOs ---

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Contact string  `json:"contact" binding:"required"`
	Address *string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// --- CustomerService Interface ---

type CustomerService interface {
	CreateCustomer(req CreateCustomerRequest) (*models.Customer, error)
	GetCustomers() []models.Customer
	GetCustomerByID(id string) (*models.Customer, error)
	UpdateCustomer(id string, req UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(id string) error
}

// --- customerService Implementation ---

type customerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(cr repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cr}
}

func (s *customerService) CreateCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrCustomerValidation)
	}
	if strings.TrimSpace(req.Contact) == "" {
		return nil, fmt.Errorf("%w: contact cannot be empty", ErrCustomerValidation)
	}

	customer := models.Customer{
		Name:    strings.TrimSpace(req.Name),
		Contact: strings.TrimSpace(req.Contact),
		Address: req.Address,
	}

	created, err := s.customerRepo.Add(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}

func (s *customerService) GetCustomers() []models.Customer {
	return s.customerRepo.List()
}

func (s *customerService) GetCustomerByID(id string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(id string, req UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
		}
		return nil, fmt.Errorf("failed to find customer for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrCustomerValidation)
		}
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Contact != nil {
		if strings.TrimSpace(*req.Contact) == "" {
			return nil, fmt.Errorf("%w: contact cannot be empty", ErrCustomerValidation)
		}
		customer.Contact = strings.TrimSpace(*req.Contact)
	}
	if req.Address != nil {
		customer.Address = req.Address
	}

	updated, err := s.customerRepo.Update(*customer)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return updated, nil
}

func (s *customerService) DeleteCustomer(id string) error {
	if _, err := s.customerRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
		}
		return fmt.Errorf("failed to find customer for deletion: %w", err)
	}

	// Past sales keep their denormalized customer name, so deleting a
	// customer does not touch them.
	if err := s.customerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
