package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"

	"github.com/google/uuid"
)

const productionNumberPrefix = "PO-"

// ProductionRepository defines the production order collection operations.
type ProductionRepository interface {
	List() []models.Production
	GetByID(id string) (*models.Production, error)
	Add(production models.Production) (*models.Production, error)
	Update(production models.Production) (*models.Production, error)
	Delete(id string) error
	NextProductionNumber() string
}

type productionRepository struct {
	ds *Dataset
}

// NewProductionRepository creates a new instance of ProductionRepository.
func NewProductionRepository(ds *Dataset) ProductionRepository {
	return &productionRepository{ds: ds}
}

func (r *productionRepository) List() []models.Production {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := make([]models.Production, len(r.ds.productions))
	copy(out, r.ds.productions)
	return out
}

func (r *productionRepository) GetByID(id string) (*models.Production, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	for i := range r.ds.productions {
		if r.ds.productions[i].ID == id {
			production := r.ds.productions[i]
			return &production, nil
		}
	}
	return nil, ErrNotFound
}

func (r *productionRepository) Add(production models.Production) (*models.Production, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	production.ID = uuid.NewString()

	next := make([]models.Production, len(r.ds.productions), len(r.ds.productions)+1)
	copy(next, r.ds.productions)
	next = append(next, production)

	if err := r.ds.persist(storage.KeyProductions, next); err != nil {
		return nil, err
	}
	r.ds.productions = next
	return &production, nil
}

func (r *productionRepository) Update(production models.Production) (*models.Production, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	index := -1
	for i := range r.ds.productions {
		if r.ds.productions[i].ID == production.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	next := make([]models.Production, len(r.ds.productions))
	copy(next, r.ds.productions)
	next[index] = production

	if err := r.ds.persist(storage.KeyProductions, next); err != nil {
		return nil, err
	}
	r.ds.productions = next
	return &production, nil
}

func (r *productionRepository) Delete(id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	next := make([]models.Production, 0, len(r.ds.productions))
	for i := range r.ds.productions {
		if r.ds.productions[i].ID != id {
			next = append(next, r.ds.productions[i])
		}
	}
	if len(next) == len(r.ds.productions) {
		return nil
	}

	if err := r.ds.persist(storage.KeyProductions, next); err != nil {
		return err
	}
	r.ds.productions = next
	return nil
}

func (r *productionRepository) NextProductionNumber() string {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	highest := 0
	for _, production := range r.ds.productions {
		if !strings.HasPrefix(production.ProductionNumber, productionNumberPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(production.ProductionNumber, productionNumberPrefix))
		if err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%d", productionNumberPrefix, highest+1)
}
