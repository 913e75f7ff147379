package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"buildops_backend/internal/models"
	"buildops_backend/internal/seed"
	"buildops_backend/internal/storage"
	"buildops_backend/pkg/utils"
)

// Dataset owns the in-memory authoritative collections. All repositories
// share one Dataset; its mutex serializes every read-modify-write, so two
// postings against the same material can never interleave.
//
// Persistence is write-first: a mutation serializes the whole affected
// collection and writes it to the store, and only on confirmed success
// swaps the in-memory slice. On failure the caller gets ErrStorage and the
// in-memory view still matches what is on disk.
type Dataset struct {
	mu    sync.Mutex
	store storage.Store

	materials      []models.Material
	sales          []models.Sale
	boqs           []models.BOQ
	productions    []models.Production
	stockMovements []models.StockMovement
	customers      []models.Customer
}

// Load hydrates every collection from the store. Loading is fail-soft: a
// collection that cannot be read or decoded falls back to the built-in
// sample data with a logged warning, and an absent key loads empty.
func Load(store storage.Store) *Dataset {
	ds := &Dataset{store: store}
	ds.materials = loadCollection(store, storage.KeyMaterials, seed.Materials)
	ds.sales = loadCollection(store, storage.KeySales, seed.Sales)
	ds.boqs = loadCollection(store, storage.KeyBOQs, seed.BOQs)
	ds.productions = loadCollection(store, storage.KeyProductions, seed.Productions)
	ds.stockMovements = loadCollection(store, storage.KeyStockMovements, seed.StockMovements)
	ds.customers = loadCollection(store, storage.KeyCustomers, seed.Customers)
	return ds
}

func loadCollection[T any](store storage.Store, key string, fallback func() []T) []T {
	raw, ok, err := store.Get(key)
	if err != nil {
		utils.LogError(err, "Failed to load collection "+key+", falling back to sample data")
		return fallback()
	}
	if !ok {
		return []T{}
	}

	var collection []T
	if err := json.Unmarshal([]byte(raw), &collection); err != nil {
		utils.LogError(err, "Failed to decode collection "+key+", falling back to sample data")
		return fallback()
	}
	if collection == nil {
		collection = []T{}
	}
	return collection
}

// persist writes one collection back to the store. Callers must hold the
// dataset mutex and must not mutate in-memory state until it returns nil.
func (d *Dataset) persist(key string, collection interface{}) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStorage, key, err)
	}
	if err := d.store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
