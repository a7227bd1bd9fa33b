package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/repository"
)

// SettingsService reads and replaces the shop configuration.
type SettingsService interface {
	Get() model.Settings
	Update(settings model.Settings) error
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get() model.Settings {
	return s.repo.Load()
}

// Update validates and replaces the settings wholesale.
func (s *settingsService) Update(settings model.Settings) error {
	if settings.TaxRate.IsNegative() || settings.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("tax rate must be between 0 and 100")
	}
	if settings.SalesLayout != "grid" && settings.SalesLayout != "list" {
		return errors.New("sales layout must be grid or list")
	}
	return s.repo.Save(settings)
}
