package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

func buildCheckout(t *testing.T, printer *stubPrinter) (CheckoutService, CartService, *stubTransactionRepo) {
	t.Helper()
	cart := NewCartService()
	txRepo := &stubTransactionRepo{}
	svc := NewCheckoutService(cart, newStubSettingsRepo(), txRepo, printer, nil, t.TempDir())
	return svc, cart, txRepo
}

// seedSale puts the reference scenario in the cart: subtotal 200, 10%
// discount, default 10% tax — total 198.
func seedSale(t *testing.T, cart CartService) {
	t.Helper()
	p := demoProduct("widget", 100)
	cart.AddItem(p)
	cart.AddItem(p)
	require.NoError(t, cart.SetDiscount(model.Discount{
		Amount: decimal.NewFromInt(10),
		Kind:   model.DiscountPercent,
	}))
}

func TestRequestPayment_EmptyCartRejected(t *testing.T) {
	svc, _, txRepo := buildCheckout(t, &stubPrinter{})

	_, err := svc.RequestPayment()

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StateIdle, svc.State())
	assert.Empty(t, txRepo.saved)
}

func TestComplete_ViewFinalizesExactlyOnce(t *testing.T) {
	svc, cart, txRepo := buildCheckout(t, &stubPrinter{})
	seedSale(t, cart)

	totals, err := svc.RequestPayment()
	require.NoError(t, err)
	require.True(t, totals.Total.Equal(decimal.NewFromInt(198)))

	result, err := svc.Complete(context.Background(), ActionView, CompleteOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ReceiptHTML)

	// Exactly one transaction, built from the pre-finalize snapshot.
	require.Len(t, txRepo.saved, 1)
	tx := txRepo.saved[0]
	assert.True(t, tx.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, tx.Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, tx.Tax.Equal(decimal.NewFromInt(18)))
	assert.True(t, tx.Total.Equal(decimal.NewFromInt(198)))
	require.Len(t, tx.Items, 1)
	assert.Equal(t, 2, tx.Items[0].Quantity)

	// Sale state reset: cart empty, discount back to zero/absolute, idle.
	assert.Empty(t, cart.Lines())
	assert.True(t, cart.Discount().Amount.IsZero())
	assert.Equal(t, StateIdle, svc.State())
}

func TestComplete_WithoutPaymentRequest(t *testing.T) {
	svc, cart, _ := buildCheckout(t, &stubPrinter{})
	seedSale(t, cart)

	_, err := svc.Complete(context.Background(), ActionView, CompleteOptions{})

	assert.ErrorIs(t, err, ErrNoPendingSale)
}

func TestComplete_FailedPrintThenShare(t *testing.T) {
	printer := &stubPrinter{fail: true}
	svc, cart, txRepo := buildCheckout(t, printer)
	seedSale(t, cart)

	_, err := svc.RequestPayment()
	require.NoError(t, err)

	// Failed print: nothing persisted, cart and discount untouched, pending.
	_, err = svc.Complete(context.Background(), ActionPrint, CompleteOptions{})
	require.ErrorIs(t, err, ErrPrintFailed)
	assert.Empty(t, txRepo.saved)
	assert.Len(t, cart.Lines(), 1)
	assert.False(t, cart.Discount().Amount.IsZero())
	assert.Equal(t, StateAwaitingChoice, svc.State())

	// Retry with share: exactly one transaction for the sale.
	result, err := svc.Complete(context.Background(), ActionShare, CompleteOptions{Phone: "+92 300 1234567"})
	require.NoError(t, err)
	assert.Contains(t, result.ShareURL, "https://wa.me/923001234567?text=")
	assert.NotEmpty(t, result.ShareText)

	require.Len(t, txRepo.saved, 1)
	assert.True(t, txRepo.saved[0].Total.Equal(decimal.NewFromInt(198)))
	assert.Equal(t, StateIdle, svc.State())
}

func TestComplete_SuccessfulPrint(t *testing.T) {
	printer := &stubPrinter{}
	svc, cart, txRepo := buildCheckout(t, printer)
	seedSale(t, cart)

	_, err := svc.RequestPayment()
	require.NoError(t, err)

	result, err := svc.Complete(context.Background(), ActionPrint, CompleteOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, printer.calls)
	assert.NotEmpty(t, result.PDFPath)
	require.Len(t, txRepo.saved, 1)
	assert.Empty(t, cart.Lines())
}

func TestComplete_SingleFlight(t *testing.T) {
	printer := &stubPrinter{
		started: make(chan struct{}),
		blockCh: make(chan struct{}),
	}
	svc, cart, txRepo := buildCheckout(t, printer)
	seedSale(t, cart)

	_, err := svc.RequestPayment()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Complete(context.Background(), ActionPrint, CompleteOptions{})
		done <- err
	}()

	// Wait until the print action is in flight, then try a second completion.
	<-printer.started
	_, err = svc.Complete(context.Background(), ActionView, CompleteOptions{})
	assert.ErrorIs(t, err, ErrCompletionInFlight)

	// And a second payment request must not restart the flow either.
	_, err = svc.RequestPayment()
	assert.ErrorIs(t, err, ErrCompletionInFlight)

	close(printer.blockCh)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("print completion never finished")
	}
	require.Len(t, txRepo.saved, 1)
}

func TestCancel_ReturnsToIdleWithoutPersisting(t *testing.T) {
	svc, cart, txRepo := buildCheckout(t, &stubPrinter{})
	seedSale(t, cart)

	_, err := svc.RequestPayment()
	require.NoError(t, err)

	require.NoError(t, svc.Cancel())

	assert.Equal(t, StateIdle, svc.State())
	assert.Empty(t, txRepo.saved)
	assert.Len(t, cart.Lines(), 1)
	assert.False(t, cart.Discount().Amount.IsZero())
}

func TestComplete_PersistFailureKeepsSalePending(t *testing.T) {
	svc, cart, txRepo := buildCheckout(t, &stubPrinter{})
	txRepo.saveErr = assert.AnError
	seedSale(t, cart)

	_, err := svc.RequestPayment()
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), ActionView, CompleteOptions{})

	require.Error(t, err)
	assert.Empty(t, txRepo.saved)
	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, StateAwaitingChoice, svc.State())
}
