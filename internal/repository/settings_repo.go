package repository

import (
	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/model"
)

// SettingsRepository persists the shop settings as a single document.
type SettingsRepository interface {
	Load() model.Settings
	Save(settings model.Settings) error
}

type settingsRepo struct{ kv *infra.KVStore }

func NewSettingsRepository(kv *infra.KVStore) SettingsRepository {
	return &settingsRepo{kv: kv}
}

// Load merges stored fields over the defaults, so settings saved by an older
// version (missing newer fields) still load cleanly. Absence or parse failure
// yields the defaults.
func (r *settingsRepo) Load() model.Settings {
	settings := model.DefaultSettings()
	r.kv.Get(settingsKey, &settings)
	return settings
}

// Save replaces the settings wholesale.
func (r *settingsRepo) Save(settings model.Settings) error {
	return r.kv.Set(settingsKey, settings)
}
