package service

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

// ErrNegativeDiscount is returned when a caller tries to set a discount with
// a negative amount.
var ErrNegativeDiscount = errors.New("discount amount cannot be negative")

// CartService is the in-memory store for the active sale: an ordered
// collection of cart lines keyed by product id, plus the sale-wide discount.
// There is exactly one cart per process — one running instance is one till.
type CartService interface {
	AddItem(p model.Product)
	ChangeQuantity(id string, delta int)
	RemoveItem(id string)
	Clear()
	Lines() []model.CartLine
	TotalQuantity() int
	SetDiscount(d model.Discount) error
	Discount() model.Discount
	Totals(taxRatePercent decimal.Decimal) PricingResult
}

type cartService struct {
	mu       sync.Mutex
	lines    []model.CartLine // insertion order preserved for display
	discount model.Discount
}

func NewCartService() CartService {
	return &cartService{discount: model.ZeroDiscount()}
}

// AddItem increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. Never fails.
func (s *cartService) AddItem(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, model.CartLine{Product: p, Quantity: 1})
}

// ChangeQuantity applies a quantity delta to the line for id. A resulting
// quantity <= 0 removes the line entirely; an absent id is a no-op.
func (s *cartService) ChangeQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		if s.lines[i].Quantity+delta <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity += delta
		}
		return
	}
}

// RemoveItem drops the line for id if present; no-op otherwise.
func (s *cartService) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and resets the discount to its zero/absolute default.
func (s *cartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.discount = model.ZeroDiscount()
}

// Lines returns a copy of the cart lines in insertion order.
func (s *cartService) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalQuantity sums all line quantities (display badge count).
func (s *cartService) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

func (s *cartService) SetDiscount(d model.Discount) error {
	if d.Amount.IsNegative() {
		return ErrNegativeDiscount
	}
	if d.Kind != model.DiscountPercent {
		d.Kind = model.DiscountAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = d
	return nil
}

func (s *cartService) Discount() model.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount
}

// Totals recomputes the derived totals for the current cart contents.
func (s *cartService) Totals(taxRatePercent decimal.Decimal) PricingResult {
	s.mu.Lock()
	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	discount := s.discount
	s.mu.Unlock()
	return ComputeTotals(lines, discount, taxRatePercent)
}
