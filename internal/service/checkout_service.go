package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/receipt"
	"github.com/hamaza7867/POS-NEW/internal/repository"
	"github.com/hamaza7867/POS-NEW/internal/worker"
)

// CheckoutState is the finalizer's position in the payment flow.
type CheckoutState int

const (
	// StateIdle — no active payment flow.
	StateIdle CheckoutState = iota
	// StateAwaitingChoice — payment requested, waiting for a completion action.
	StateAwaitingChoice
	// StateCompleting — one completion action is in flight (single-flight).
	StateCompleting
)

func (s CheckoutState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateCompleting:
		return "completing"
	default:
		return "unknown"
	}
}

// Action is one of the three mutually exclusive completion paths.
type Action string

const (
	ActionPrint Action = "print"
	ActionShare Action = "share"
	ActionView  Action = "view"
)

var (
	// ErrEmptyCart rejects a payment request with nothing to sell.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoPendingSale rejects completion/cancel outside a payment flow.
	ErrNoPendingSale = errors.New("no payment has been requested")
	// ErrCompletionInFlight rejects a second completion while one is running.
	ErrCompletionInFlight = errors.New("a completion action is already in progress")
	// ErrPrintFailed is returned when the print surface reported a definite
	// failure; the sale stays pending so the user can retry any action.
	ErrPrintFailed = errors.New("printing failed")
)

// snapshot is the immutable copy of the sale taken when a completion action
// begins. The eventual Transaction is built from it, never from the live cart.
type snapshot struct {
	lines    []model.CartLine
	totals   PricingResult
	settings model.Settings
	date     time.Time
}

// CompleteOptions carries the optional share/email destinations.
type CompleteOptions struct {
	Phone string // WhatsApp destination for share
	Email string // when set, the receipt PDF is mailed fire-and-forget
}

// CompleteResult is what a successful completion hands back to the caller.
type CompleteResult struct {
	Transaction model.Transaction
	ReceiptHTML string // set for view
	ShareURL    string // set for share
	ShareText   string // set for share
	PDFPath     string // set when a PDF was rendered (print, email)
}

// CheckoutService is the transaction finalizer: it couples "perform one of
// {print, share, view}" with "persist exactly one Transaction and reset the
// sale" while tolerating failure of the action itself.
type CheckoutService interface {
	// RequestPayment opens the payment flow. Fails on an empty cart with no
	// state transition.
	RequestPayment() (PricingResult, error)
	// Complete runs one completion action against a snapshot of the current
	// sale. On success the transaction is persisted and the cart reset; a
	// failed print leaves everything untouched and pending.
	Complete(ctx context.Context, action Action, opts CompleteOptions) (*CompleteResult, error)
	// Cancel abandons the pending payment without persistence or cart mutation.
	Cancel() error
	State() CheckoutState
}

type checkoutService struct {
	mu    sync.Mutex
	state CheckoutState

	cart         CartService
	settingsRepo repository.SettingsRepository
	txRepo       repository.TransactionRepository
	printer      infra.Printer
	dispatcher   *worker.Dispatcher
	spoolPath    string
}

func NewCheckoutService(
	cart CartService,
	settingsRepo repository.SettingsRepository,
	txRepo repository.TransactionRepository,
	printer infra.Printer,
	dispatcher *worker.Dispatcher,
	spoolPath string,
) CheckoutService {
	return &checkoutService{
		state:        StateIdle,
		cart:         cart,
		settingsRepo: settingsRepo,
		txRepo:       txRepo,
		printer:      printer,
		dispatcher:   dispatcher,
		spoolPath:    spoolPath,
	}
}

func (s *checkoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *checkoutService) RequestPayment() (PricingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleting {
		return PricingResult{}, ErrCompletionInFlight
	}
	settings := s.settingsRepo.Load()
	totals := s.cart.Totals(settings.TaxRate)
	if s.cart.TotalQuantity() == 0 {
		// Rejected silently in the sense of the state machine: no transition.
		return PricingResult{}, ErrEmptyCart
	}
	s.state = StateAwaitingChoice
	return totals, nil
}

func (s *checkoutService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateCompleting:
		return ErrCompletionInFlight
	case StateAwaitingChoice:
		s.state = StateIdle
	}
	return nil
}

func (s *checkoutService) Complete(ctx context.Context, action Action, opts CompleteOptions) (*CompleteResult, error) {
	snap, err := s.beginCompletion()
	if err != nil {
		return nil, err
	}

	result, err := s.runAction(ctx, action, snap, opts)
	if err != nil {
		// Failed: nothing persisted, cart untouched, back to awaiting so the
		// user can retry with a different action.
		s.setState(StateAwaitingChoice)
		return nil, err
	}

	tx := model.Transaction{
		ID:       result.Transaction.ID,
		Date:     snap.date,
		Items:    snap.lines,
		Subtotal: snap.totals.Subtotal,
		Tax:      snap.totals.TaxAmount,
		Discount: snap.totals.DiscountAmount,
		Total:    snap.totals.Total,
	}
	if err := s.txRepo.Save(tx); err != nil {
		log.Error().Err(err).Msg("failed to persist transaction")
		s.setState(StateAwaitingChoice)
		return nil, fmt.Errorf("persist transaction: %w", err)
	}
	result.Transaction = tx

	// Committed: exactly one transaction persisted; reset sale state.
	s.cart.Clear()
	s.setState(StateIdle)

	log.Info().Str("transaction_id", tx.ID).Str("action", string(action)).
		Str("total", tx.Total.StringFixed(2)).Msg("sale finalized")
	return result, nil
}

// beginCompletion enforces the single-flight rule and captures the snapshot
// while holding the lock, so no cart mutation can slip between the state
// transition and the copy.
func (s *checkoutService) beginCompletion() (snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateIdle:
		return snapshot{}, ErrNoPendingSale
	case StateCompleting:
		return snapshot{}, ErrCompletionInFlight
	}

	settings := s.settingsRepo.Load()
	snap := snapshot{
		lines:    s.cart.Lines(),
		totals:   s.cart.Totals(settings.TaxRate),
		settings: settings,
		date:     time.Now(),
	}
	s.state = StateCompleting
	return snap, nil
}

func (s *checkoutService) setState(state CheckoutState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *checkoutService) runAction(ctx context.Context, action Action, snap snapshot, opts CompleteOptions) (*CompleteResult, error) {
	rcpt := receipt.Receipt{
		Lines:    snap.lines,
		Subtotal: snap.totals.Subtotal,
		Discount: snap.totals.DiscountAmount,
		Tax:      snap.totals.TaxAmount,
		Total:    snap.totals.Total,
		Settings: snap.settings,
		Date:     snap.date,
	}
	txID := uuid.NewString()
	result := &CompleteResult{Transaction: model.Transaction{ID: txID}}

	switch action {
	case ActionPrint:
		pdfPath, err := receipt.RenderPDF(rcpt, txID, s.spoolPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPrintFailed, err)
		}
		result.PDFPath = pdfPath
		if err := s.printer.Print(ctx, pdfPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPrintFailed, err)
		}

	case ActionShare:
		// Successful once the link is built — there is no delivery confirmation.
		result.ShareText = receipt.RenderText(rcpt)
		result.ShareURL = receipt.WhatsAppURL(rcpt, opts.Phone)

	case ActionView:
		html, err := receipt.RenderHTML(rcpt)
		if err != nil {
			return nil, err
		}
		result.ReceiptHTML = html

	default:
		return nil, fmt.Errorf("unknown completion action %q", action)
	}

	s.maybeEmailReceipt(rcpt, opts.Email, txID, result.PDFPath)
	return result, nil
}

// maybeEmailReceipt enqueues a fire-and-forget receipt email when a
// destination was given. Delivery problems never fail the sale.
func (s *checkoutService) maybeEmailReceipt(rcpt receipt.Receipt, to, txID, pdfPath string) {
	if to == "" || s.dispatcher == nil {
		return
	}
	if pdfPath == "" {
		p, err := receipt.RenderPDF(rcpt, txID, s.spoolPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to render receipt PDF for email")
		} else {
			pdfPath = p
		}
	}
	payload := worker.EmailPayload{
		To:      to,
		Subject: fmt.Sprintf("Your receipt from %s", rcpt.Settings.ShopName),
		Body:    receipt.RenderText(rcpt),
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueEmail(payload); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to enqueue receipt email")
	}
}
