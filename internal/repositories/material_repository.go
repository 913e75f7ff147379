package repositories

import (
	"time"

	"buildops_backend/internal/models"
	"buildops_backend/internal/storage"

	"github.com/google/uuid"
)

// MaterialRepository defines the material collection operations. Returned
// slices and entities are snapshots; callers must not mutate them.
type MaterialRepository interface {
	List() []models.Material
	GetByID(id string) (*models.Material, error)
	Add(material models.Material) (*models.Material, error)
	Update(material models.Material) (*models.Material, error)
	Delete(id string) error
	LowStock() []models.Material
}

type materialRepository struct {
	ds *Dataset
}

// NewMaterialRepository creates a new instance of MaterialRepository.
func NewMaterialRepository(ds *Dataset) MaterialRepository {
	return &materialRepository{ds: ds}
}

func (r *materialRepository) List() []models.Material {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	out := make([]models.Material, len(r.ds.materials))
	copy(out, r.ds.materials)
	return out
}

func (r *materialRepository) GetByID(id string) (*models.Material, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	for i := range r.ds.materials {
		if r.ds.materials[i].ID == id {
			material := r.ds.materials[i]
			return &material, nil
		}
	}
	return nil, ErrNotFound
}

func (r *materialRepository) Add(material models.Material) (*models.Material, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	material.ID = uuid.NewString()
	material.LastUpdated = time.Now()

	next := make([]models.Material, len(r.ds.materials), len(r.ds.materials)+1)
	copy(next, r.ds.materials)
	next = append(next, material)

	if err := r.ds.persist(storage.KeyMaterials, next); err != nil {
		return nil, err
	}
	r.ds.materials = next
	return &material, nil
}

func (r *materialRepository) Update(material models.Material) (*models.Material, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	index := -1
	for i := range r.ds.materials {
		if r.ds.materials[i].ID == material.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	material.LastUpdated = time.Now()

	next := make([]models.Material, len(r.ds.materials))
	copy(next, r.ds.materials)
	next[index] = material

	if err := r.ds.persist(storage.KeyMaterials, next); err != nil {
		return nil, err
	}
	r.ds.materials = next
	return &material, nil
}

func (r *materialRepository) Delete(id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	next := make([]models.Material, 0, len(r.ds.materials))
	for i := range r.ds.materials {
		if r.ds.materials[i].ID != id {
			next = append(next, r.ds.materials[i])
		}
	}
	if len(next) == len(r.ds.materials) {
		// Absent records make deletion a no-op so retries stay safe.
		return nil
	}

	if err := r.ds.persist(storage.KeyMaterials, next); err != nil {
		return err
	}
	r.ds.materials = next
	return nil
}

func (r *materialRepository) LowStock() []models.Material {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	low := []models.Material{}
	for _, material := range r.ds.materials {
		if material.CurrentQuantity <= material.MinQuantity {
			low = append(low, material)
		}
	}
	return low
}
