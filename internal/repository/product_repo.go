package repository

import (
	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/model"
)

// Storage keys. These names predate this implementation — they are the keys
// existing data files and backups were written under.
const (
	productsKey     = "pos_products"
	settingsKey     = "pos_settings"
	transactionsKey = "pos_transactions"
)

// ProductRepository persists the product catalog as a single document.
type ProductRepository interface {
	Load() []model.Product
	Save(products []model.Product) error
}

type productRepo struct{ kv *infra.KVStore }

func NewProductRepository(kv *infra.KVStore) ProductRepository {
	return &productRepo{kv: kv}
}

// Load returns the stored catalog; absence or parse failure yields an empty list.
func (r *productRepo) Load() []model.Product {
	var products []model.Product
	if !r.kv.Get(productsKey, &products) {
		return []model.Product{}
	}
	return products
}

// Save replaces the catalog wholesale.
func (r *productRepo) Save(products []model.Product) error {
	return r.kv.Set(productsKey, products)
}
