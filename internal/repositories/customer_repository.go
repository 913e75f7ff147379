package repositories

import (
	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"

	"github.com/google/uuid"
)

// CustomerRepository defines the customer collection operations.
type CustomerRepository interface {
	List() []models.Customer
	GetByID(id string) (*models.Customer, error)
	Add(customer models.Customer) (*models.Customer, error)
	Update(customer models.Customer) (*models.Customer, error)
	Delete(id string) error
}

type customerRepository struct {
	ds *Dataset
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(ds *Dataset) CustomerRepository {
	return &customerRepository{ds: ds}
}

func (r *customerRepository) List() []models.Customer {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := make([]models.Customer, len(r.ds.customers))
	copy(out, r.ds.customers)
	return out
}

func (r *customerRepository) GetByID(id string) (*models.Customer, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	for i := range r.ds.customers {
		if r.ds.customers[i].ID == id {
			customer := r.ds.customers[i]
			return &customer, nil
		}
	}
	return nil, ErrNotFound
}

func (r *customerRepository) Add(customer models.Customer) (*models.Customer, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	customer.ID = uuid.NewString()

	next := make([]models.Customer, len(r.ds.customers), len(r.ds.customers)+1)
	copy(next, r.ds.customers)
	next = append(next, customer)

	if err := r.ds.persist(storage.KeyCustomers, next); err != nil {
		return nil, err
	}
	r.ds.customers = next
	return &customer, nil
}

func (r *customerRepository) Update(customer models.Customer) (*models.Customer, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	index := -1
	for i := range r.ds.customers {
		if r.ds.customers[i].ID == customer.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	next := make([]models.Customer, len(r.ds.customers))
	copy(next, r.ds.customers)
	next[index] = customer

	if err := r.ds.persist(storage.KeyCustomers, next); err != nil {
		return nil, err
	}
	r.ds.customers = next
	return &customer, nil
}

func (r *customerRepository) Delete(id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	next := make([]models.Customer, 0, len(r.ds.customers))
	for i := range r.ds.customers {
		if r.ds.customers[i].ID != id {
			next = append(next, r.ds.customers[i])
		}
	}
	if len(next) == len(r.ds.customers) {
		return nil
	}

	if err := r.ds.persist(storage.KeyCustomers, next); err != nil {
		return err
	}
	r.ds.customers = next
	return nil
}
