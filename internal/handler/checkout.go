package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/apierror"
	"github.com/hamaza7867/POS-NEW/internal/dto"
	"github.com/hamaza7867/POS-NEW/internal/service"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
}

func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// RequestPayment opens the payment flow for a non-empty cart.
func (h *CheckoutHandler) RequestPayment(c *gin.Context) {
	totals, err := h.checkout.RequestPayment()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrCompletionInFlight) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.RequestPaymentResponse{
		State:    h.checkout.State().String(),
		Subtotal: totals.Subtotal,
		Discount: totals.DiscountAmount,
		Tax:      totals.TaxAmount,
		Total:    totals.Total,
	})
}

// Complete runs one of the three completion actions. A failed print leaves
// the sale pending for retry; success finalizes the sale exactly once.
func (h *CheckoutHandler) Complete(c *gin.Context) {
	var req dto.CompleteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.checkout.Complete(c.Request.Context(), service.Action(req.Action), service.CompleteOptions{
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompletionInFlight):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, service.ErrNoPendingSale):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrPrintFailed):
			// Surface the failure; the cart and discount are untouched and the
			// user may retry with a different action.
			c.JSON(http.StatusBadGateway, apierror.New("Printing failed. Try another method."))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Could not complete the sale"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.CompleteResponse{
		State:       h.checkout.State().String(),
		Transaction: result.Transaction,
		ReceiptHTML: result.ReceiptHTML,
		ShareURL:    result.ShareURL,
		ShareText:   result.ShareText,
	})
}

// Cancel abandons the pending payment without persisting anything.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.checkout.Cancel(); err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutStateResponse{State: h.checkout.State().String()})
}

// State reports the finalizer's current state.
func (h *CheckoutHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CheckoutStateResponse{State: h.checkout.State().String()})
}
