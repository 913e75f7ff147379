package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"

	"github.com/google/uuid"
)

const orderNumberPrefix = "SO-"

// SaleRepository defines the sale collection operations.
type SaleRepository interface {
	List() []models.Sale
	GetByID(id string) (*models.Sale, error)
	Add(sale models.Sale) (*models.Sale, error)
	Update(sale models.Sale) (*models.Sale, error)
	Delete(id string) error
	// NextOrderNumber allocates the next human-facing order number by
	// scanning existing orders for the highest numeric suffix. It runs
	// under the dataset mutex, so in-process allocation is race-free.
	NextOrderNumber() string
}

type saleRepository struct {
	ds *Dataset
}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository(ds *Dataset) SaleRepository {
	return &saleRepository{ds: ds}
}

func (r *saleRepository) List() []models.Sale {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := make([]models.Sale, len(r.ds.sales))
	copy(out, r.ds.sales)
	return out
}

func (r *saleRepository) GetByID(id string) (*models.Sale, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	for i := range r.ds.sales {
		if r.ds.sales[i].ID == id {
			sale := r.ds.sales[i]
			return &sale, nil
		}
	}
	return nil, ErrNotFound
}

func (r *saleRepository) Add(sale models.Sale) (*models.Sale, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	sale.ID = uuid.NewString()

	next := make([]models.Sale, len(r.ds.sales), len(r.ds.sales)+1)
	copy(next, r.ds.sales)
	next = append(next, sale)

	if err := r.ds.persist(storage.KeySales, next); err != nil {
		return nil, err
	}
	r.ds.sales = next
	return &sale, nil
}

func (r *saleRepository) Update(sale models.Sale) (*models.Sale, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	index := -1
	for i := range r.ds.sales {
		if r.ds.sales[i].ID == sale.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	next := make([]models.Sale, len(r.ds.sales))
	copy(next, r.ds.sales)
	next[index] = sale

	if err := r.ds.persist(storage.KeySales, next); err != nil {
		return nil, err
	}
	r.ds.sales = next
	return &sale, nil
}

func (r *saleRepository) Delete(id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	next := make([]models.Sale, 0, len(r.ds.sales))
	for i := range r.ds.sales {
		if r.ds.sales[i].ID != id {
			next = append(next, r.ds.sales[i])
		}
	}
	if len(next) == len(r.ds.sales) {
		return nil
	}

	if err := r.ds.persist(storage.KeySales, next); err != nil {
		return err
	}
	r.ds.sales = next
	return nil
}

func (r *saleRepository) NextOrderNumber() string {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	highest := 0
	for _, sale := range r.ds.sales {
		if !strings.HasPrefix(sale.OrderNumber, orderNumberPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(sale.OrderNumber, orderNumberPrefix))
		if err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%d", orderNumberPrefix, highest+1)
}
