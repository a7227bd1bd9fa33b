package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

func seededProductService() (ProductService, *stubProductRepo) {
	repo := &stubProductRepo{products: []model.Product{
		{ID: "1", Name: "Green Tea", Price: decimal.NewFromInt(450), SKU: "BEV-001", Category: "Beverages"},
		{ID: "2", Name: "Milk 1L", Price: decimal.NewFromInt(220), SKU: "GRC-001", Category: "Groceries"},
		{ID: "3", Name: "Cola 1.5L", Price: decimal.NewFromInt(190), SKU: "BEV-002", Category: "Beverages"},
	}}
	return NewProductService(repo), repo
}

func TestProducts_ListSearchMatchesNameOrSKU(t *testing.T) {
	svc, _ := seededProductService()

	byName := svc.List(ListFilter{Search: "tea"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Green Tea", byName[0].Name)

	bySKU := svc.List(ListFilter{Search: "grc"})
	require.Len(t, bySKU, 1)
	assert.Equal(t, "Milk 1L", bySKU[0].Name)
}

func TestProducts_ListCategoryFilter(t *testing.T) {
	svc, _ := seededProductService()

	assert.Len(t, svc.List(ListFilter{Category: "Beverages"}), 2)
	assert.Len(t, svc.List(ListFilter{Category: "all"}), 3)
	assert.Len(t, svc.List(ListFilter{}), 3)
	assert.Empty(t, svc.List(ListFilter{Category: "Hardware"}))
}

func TestProducts_ListSortOrders(t *testing.T) {
	svc, _ := seededProductService()

	byName := svc.List(ListFilter{Sort: "name-asc"})
	assert.Equal(t, "Cola 1.5L", byName[0].Name)
	assert.Equal(t, "Milk 1L", byName[2].Name)

	byPrice := svc.List(ListFilter{Sort: "price-desc"})
	assert.Equal(t, "Green Tea", byPrice[0].Name)
	assert.Equal(t, "Cola 1.5L", byPrice[2].Name)
}

func TestProducts_CreateGeneratesIDAndSKU(t *testing.T) {
	svc, repo := seededProductService()

	p, err := svc.Create("Bread", decimal.NewFromInt(180), "", "Groceries")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.True(t, strings.HasPrefix(p.SKU, "item-"), "sku = %s", p.SKU)
	assert.Len(t, repo.products, 4)
}

func TestProducts_CreateRejectsNegativePrice(t *testing.T) {
	svc, repo := seededProductService()

	_, err := svc.Create("Bad", decimal.NewFromInt(-1), "X-1", "Misc")

	assert.Error(t, err)
	assert.Len(t, repo.products, 3)
}

func TestProducts_Delete(t *testing.T) {
	svc, repo := seededProductService()

	require.NoError(t, svc.Delete("2"))
	assert.Len(t, repo.products, 2)

	assert.ErrorIs(t, svc.Delete("2"), ErrProductNotFound)
}

func TestProducts_Get(t *testing.T) {
	svc, _ := seededProductService()

	p, err := svc.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Cola 1.5L", p.Name)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProducts_CategoriesDistinctInCatalogOrder(t *testing.T) {
	svc, _ := seededProductService()

	assert.Equal(t, []string{"Beverages", "Groceries"}, svc.Categories())
}

func TestProducts_ReplaceAll(t *testing.T) {
	svc, repo := seededProductService()

	require.NoError(t, svc.ReplaceAll(nil))

	assert.NotNil(t, repo.products)
	assert.Empty(t, repo.products)
}
