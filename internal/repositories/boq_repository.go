package repositories

import (
	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"

	"github.com/google/uuid"
)

// BOQRepository defines the bill-of-quantities collection operations.
type BOQRepository interface {
	List() []models.BOQ
	GetByID(id string) (*models.BOQ, error)
	Add(boq models.BOQ) (*models.BOQ, error)
	Update(boq models.BOQ) (*models.BOQ, error)
	Delete(id string) error
}

type boqRepository struct {
	ds *Dataset
}

// NewBOQRepository creates a new instance of BOQRepository.
func NewBOQRepository(ds *Dataset) BOQRepository {
	return &boqRepository{ds: ds}
}

func (r *boqRepository) List() []models.BOQ {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := make([]models.BOQ, len(r.ds.boqs))
	copy(out, r.ds.boqs)
	return out
}

func (r *boqRepository) GetByID(id string) (*models.BOQ, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	for i := range r.ds.boqs {
		if r.ds.boqs[i].ID == id {
			boq := r.ds.boqs[i]
			return &boq, nil
		}
	}
	return nil, ErrNotFound
}

func (r *boqRepository) Add(boq models.BOQ) (*models.BOQ, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	boq.ID = uuid.NewString()

	next := make([]models.BOQ, len(r.ds.boqs), len(r.ds.boqs)+1)
	copy(next, r.ds.boqs)
	next = append(next, boq)

	if err := r.ds.persist(storage.KeyBOQs, next); err != nil {
		return nil, err
	}
	r.ds.boqs = next
	return &boq, nil
}

func (r *boqRepository) Update(boq models.BOQ) (*models.BOQ, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	index := -1
	for i := range r.ds.boqs {
		if r.ds.boqs[i].ID == boq.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	next := make([]models.BOQ, len(r.ds.boqs))
	copy(next, r.ds.boqs)
	next[index] = boq

	if err := r.ds.persist(storage.KeyBOQs, next); err != nil {
		return nil, err
	}
	r.ds.boqs = next
	return &boq, nil
}

func (r *boqRepository) Delete(id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	next := make([]models.BOQ, 0, len(r.ds.boqs))
	for i := range r.ds.boqs {
		if r.ds.boqs[i].ID != id {
			next = append(next, r.ds.boqs[i])
		}
	}
	if len(next) == len(r.ds.boqs) {
		return nil
	}

	if err := r.ds.persist(storage.KeyBOQs, next); err != nil {
		return err
	}
	r.ds.boqs = next
	return nil
}
