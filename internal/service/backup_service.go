package service

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

var ErrNoPendingImport = errors.New("no import is pending confirmation")

// BackupPayload is the JSON backup file format.
type BackupPayload struct {
	Products   []model.Product `json:"products"`
	Settings   model.Settings  `json:"settings"`
	ExportDate time.Time       `json:"exportDate"`
}

// ImportPreview summarizes a staged import for the review step.
type ImportPreview struct {
	ProductCount int            `json:"productCount"`
	Settings     model.Settings `json:"settings"`
}

// BackupService exports the shop data and runs the two-phase import: a
// payload is first staged for review, then either confirmed (applied
// wholesale) or discarded. The pending import is plain data held here, not
// state buried in a form.
type BackupService interface {
	ExportJSON() (BackupPayload, error)
	ExportCSV() (string, error)
	StageImport(raw []byte) (ImportPreview, error)
	ConfirmImport() error
	DiscardImport()
}

type backupService struct {
	mu      sync.Mutex
	pending *BackupPayload

	products ProductService
	settings SettingsService
}

func NewBackupService(products ProductService, settings SettingsService) BackupService {
	return &backupService{products: products, settings: settings}
}

func (s *backupService) ExportJSON() (BackupPayload, error) {
	return BackupPayload{
		Products:   s.products.List(ListFilter{}),
		Settings:   s.settings.Get(),
		ExportDate: time.Now(),
	}, nil
}

// ExportCSV renders the catalog as quoted CSV (Name, Price, SKU, Category).
func (s *backupService) ExportCSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Name", "Price", "SKU", "Category"}); err != nil {
		return "", err
	}
	for _, p := range s.products.List(ListFilter{}) {
		if err := w.Write([]string{p.Name, p.Price.String(), p.SKU, p.Category}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return sb.String(), w.Error()
}

// StageImport parses a backup payload and holds it for review. A malformed
// payload is rejected here; nothing is applied yet. Missing sections fall
// back to an empty catalog / default settings, matching older backup files.
func (s *backupService) StageImport(raw []byte) (ImportPreview, error) {
	var payload struct {
		Products []model.Product `json:"products"`
		Settings *model.Settings `json:"settings"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ImportPreview{}, fmt.Errorf("invalid backup file: %w", err)
	}

	staged := BackupPayload{Products: payload.Products, Settings: model.DefaultSettings()}
	if staged.Products == nil {
		staged.Products = []model.Product{}
	}
	if payload.Settings != nil {
		staged.Settings = *payload.Settings
	}

	s.mu.Lock()
	s.pending = &staged
	s.mu.Unlock()

	return ImportPreview{ProductCount: len(staged.Products), Settings: staged.Settings}, nil
}

// ConfirmImport applies the staged payload wholesale.
func (s *backupService) ConfirmImport() error {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pending == nil {
		return ErrNoPendingImport
	}
	// Settings first: Update validates, and a rejected payload must leave the
	// catalog untouched too.
	if err := s.settings.Update(pending.Settings); err != nil {
		return err
	}
	return s.products.ReplaceAll(pending.Products)
}

func (s *backupService) DiscardImport() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
