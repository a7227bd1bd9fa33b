package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/repository"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubProductRepo struct {
	products []model.Product
	saveErr  error
}

func (r *stubProductRepo) Load() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *stubProductRepo) Save(products []model.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.products = products
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubSettingsRepo struct {
	settings model.Settings
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{settings: model.DefaultSettings()}
}

func (r *stubSettingsRepo) Load() model.Settings        { return r.settings }
func (r *stubSettingsRepo) Save(s model.Settings) error { r.settings = s; return nil }

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

type stubTransactionRepo struct {
	saved   []model.Transaction
	saveErr error
}

func (r *stubTransactionRepo) Load() []model.Transaction { return r.saved }

func (r *stubTransactionRepo) Save(tx model.Transaction) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append([]model.Transaction{tx}, r.saved...)
	return nil
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// ── Printer stub ──────────────────────────────────────────────────────────────

// stubPrinter records print attempts; fail makes every attempt a definite
// failure, blockCh (when set) holds the attempt open until released.
type stubPrinter struct {
	fail    bool
	calls   int
	started chan struct{}
	blockCh chan struct{}
}

func (p *stubPrinter) Print(_ context.Context, _ string) error {
	p.calls++
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.blockCh != nil {
		<-p.blockCh
	}
	if p.fail {
		return errors.New("print surface unavailable")
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func demoProduct(name string, price float64) model.Product {
	return model.Product{
		ID:       name, // readable ids keep assertions simple
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		SKU:      "sku-" + name,
		Category: "Demo",
	}
}
