package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ListFilter narrows and orders the catalog for display.
type ListFilter struct {
	Search   string // matches name or SKU, case-insensitive
	Category string // empty or "all" = every category
	Sort     string // name-asc | name-desc | price-asc | price-desc | default
}

// ProductService manages the catalog. Products are created and deleted, never
// mutated in place; a backup import replaces the whole catalog at once.
type ProductService interface {
	List(filter ListFilter) []model.Product
	Get(id string) (model.Product, error)
	Create(name string, price decimal.Decimal, sku, category string) (model.Product, error)
	Delete(id string) error
	Categories() []string
	ReplaceAll(products []model.Product) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(filter ListFilter) []model.Product {
	products := s.repo.Load()
	query := strings.ToLower(filter.Search)

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.SKU), query) {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		result = append(result, p)
	}

	switch filter.Sort {
	case "name-asc":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	case "name-desc":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name > result[j].Name })
	case "price-asc":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price.LessThan(result[j].Price) })
	case "price-desc":
		sort.SliceStable(result, func(i, j int) bool { return result[j].Price.LessThan(result[i].Price) })
	}
	return result
}

func (s *productService) Get(id string) (model.Product, error) {
	for _, p := range s.repo.Load() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

func (s *productService) Create(name string, price decimal.Decimal, sku, category string) (model.Product, error) {
	if price.IsNegative() {
		return model.Product{}, errors.New("price cannot be negative")
	}
	if sku == "" {
		sku = generateSKU()
	}
	p := model.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		SKU:      sku,
		Category: category,
	}
	products := append(s.repo.Load(), p)
	if err := s.repo.Save(products); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (s *productService) Delete(id string) error {
	products := s.repo.Load()
	for i, p := range products {
		if p.ID == id {
			products = append(products[:i], products[i+1:]...)
			return s.repo.Save(products)
		}
	}
	return ErrProductNotFound
}

// Categories returns the distinct non-empty category labels in catalog order.
func (s *productService) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.repo.Load() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// ReplaceAll swaps in an imported catalog wholesale.
func (s *productService) ReplaceAll(products []model.Product) error {
	if products == nil {
		products = []model.Product{}
	}
	return s.repo.Save(products)
}

// generateSKU mints a display code for products created without one.
// The "item-<millis>" shape matches codes already in circulation.
func generateSKU() string {
	return fmt.Sprintf("item-%d", time.Now().UnixMilli())
}
