package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/model"
)

func testKV(t *testing.T) *infra.KVStore {
	t.Helper()
	kv, err := infra.OpenKVStore(filepath.Join(t.TempDir(), "pos.json"))
	require.NoError(t, err)
	return kv
}

func TestProductRepo_RoundTrip(t *testing.T) {
	repo := NewProductRepository(testKV(t))

	assert.Empty(t, repo.Load())

	products := []model.Product{
		{ID: "1", Name: "Milk 1L", Price: decimal.NewFromInt(220), SKU: "GRC-001", Category: "Groceries"},
	}
	require.NoError(t, repo.Save(products))

	got := repo.Load()
	require.Len(t, got, 1)
	assert.Equal(t, "Milk 1L", got[0].Name)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(220)))
}

func TestSettingsRepo_DefaultsWhenUnset(t *testing.T) {
	repo := NewSettingsRepository(testKV(t))

	settings := repo.Load()

	assert.Equal(t, "My Shop", settings.ShopName)
	assert.True(t, settings.TaxRate.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "grid", settings.SalesLayout)
	assert.True(t, settings.SoundEnabled)
}

func TestSettingsRepo_PartialDocumentMergesOverDefaults(t *testing.T) {
	kv := testKV(t)
	// A document written by an older version, missing the newer fields.
	require.NoError(t, kv.Set("pos_settings", map[string]interface{}{
		"shopName": "Corner Store",
		"taxRate":  17,
	}))

	settings := NewSettingsRepository(kv).Load()

	assert.Equal(t, "Corner Store", settings.ShopName)
	assert.True(t, settings.TaxRate.Equal(decimal.NewFromInt(17)))
	assert.Equal(t, "grid", settings.SalesLayout) // default retained
}

func TestSettingsRepo_SaveRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(testKV(t))

	updated := model.DefaultSettings()
	updated.ShopName = "Corner Store"
	updated.SalesLayout = "list"
	require.NoError(t, repo.Save(updated))

	got := repo.Load()
	assert.Equal(t, "Corner Store", got.ShopName)
	assert.Equal(t, "list", got.SalesLayout)
}

func TestTransactionRepo_NewestFirst(t *testing.T) {
	repo := NewTransactionRepository(testKV(t))

	require.NoError(t, repo.Save(model.Transaction{ID: "older", Date: time.Now()}))
	require.NoError(t, repo.Save(model.Transaction{ID: "newer", Date: time.Now()}))

	txs := repo.Load()
	require.Len(t, txs, 2)
	assert.Equal(t, "newer", txs[0].ID)
	assert.Equal(t, "older", txs[1].ID)
}

func TestTransactionRepo_CapEvictsOldest(t *testing.T) {
	repo := NewTransactionRepository(testKV(t))

	for i := 0; i < maxTransactions; i++ {
		require.NoError(t, repo.Save(model.Transaction{ID: fmt.Sprintf("tx-%d", i)}))
	}
	require.NoError(t, repo.Save(model.Transaction{ID: "overflow"}))

	txs := repo.Load()
	require.Len(t, txs, maxTransactions)
	assert.Equal(t, "overflow", txs[0].ID)
	// tx-0 was the oldest entry and is gone.
	for _, tx := range txs {
		assert.NotEqual(t, "tx-0", tx.ID)
	}
}

func TestTransactionRepo_MalformedLogStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pos_transactions": {"oops": true}}`), 0o644))
	kv, err := infra.OpenKVStore(path)
	require.NoError(t, err)

	assert.Empty(t, NewTransactionRepository(kv).Load())
}
