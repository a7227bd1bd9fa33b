// Command seedcatalog populates an empty data file with a small demo catalog
// so a fresh install has something to sell. Existing products are kept.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/config"
	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	kv, err := infra.OpenKVStore(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to open data store")
	}

	repo := repository.NewProductRepository(kv)
	if existing := repo.Load(); len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("catalog already seeded, nothing to do")
		return
	}

	demo := []struct {
		name     string
		price    float64
		sku      string
		category string
	}{
		{"Milk 1L", 220, "GRC-001", "Groceries"},
		{"Bread (Large)", 180, "GRC-002", "Groceries"},
		{"Eggs (Dozen)", 330, "GRC-003", "Groceries"},
		{"Green Tea 100g", 450, "BEV-001", "Beverages"},
		{"Cola 1.5L", 190, "BEV-002", "Beverages"},
		{"Dishwashing Soap", 150, "HSH-001", "Household"},
		{"Laundry Powder 1kg", 520, "HSH-002", "Household"},
		{"Notebook A5", 120, "STN-001", "Stationery"},
	}

	products := make([]model.Product, 0, len(demo))
	for _, d := range demo {
		products = append(products, model.Product{
			ID:       uuid.NewString(),
			Name:     d.name,
			Price:    decimal.NewFromFloat(d.price),
			SKU:      d.sku,
			Category: d.category,
		})
	}

	if err := repo.Save(products); err != nil {
		log.Fatal().Err(err).Msg("failed to save demo catalog")
	}
	log.Info().Int("count", len(products)).Str("path", cfg.DataPath).Msg("demo catalog seeded")
}
