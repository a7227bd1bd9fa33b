package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/apierror"
	"github.com/hamaza7867/POS-NEW/internal/dto"
	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/service"
)

type CartHandler struct {
	cart     service.CartService
	products service.ProductService
	settings service.SettingsService
	checkout service.CheckoutService
}

func NewCartHandler(
	cart service.CartService,
	products service.ProductService,
	settings service.SettingsService,
	checkout service.CheckoutService,
) *CartHandler {
	return &CartHandler{cart: cart, products: products, settings: settings, checkout: checkout}
}

// Get returns the cart lines plus totals, recomputed on every call.
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

// AddItem puts one unit of a catalog product into the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.products.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	h.cart.AddItem(p)
	c.JSON(http.StatusOK, h.cartResponse())
}

// ChangeQuantity applies a quantity delta to a cart line.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req dto.ChangeQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.cart.ChangeQuantity(c.Param("id"), req.Delta)
	c.JSON(http.StatusOK, h.cartResponse())
}

// RemoveItem drops a cart line.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, h.cartResponse())
}

// Clear empties the cart and resets the discount.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, h.cartResponse())
}

// SetDiscount applies a sale-wide discount.
func (h *CartHandler) SetDiscount(c *gin.Context) {
	var req dto.SetDiscountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d := model.Discount{Amount: req.Amount, Kind: model.DiscountKind(req.Kind)}
	if err := h.cart.SetDiscount(d); err != nil {
		if errors.Is(err, service.ErrNegativeDiscount) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Could not set discount"))
		return
	}
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	settings := h.settings.Get()
	totals := h.cart.Totals(settings.TaxRate)
	return dto.CartResponse{
		Lines:         h.cart.Lines(),
		TotalQuantity: h.cart.TotalQuantity(),
		Discount:      h.cart.Discount(),
		Subtotal:      totals.Subtotal,
		DiscountAmt:   totals.DiscountAmount,
		Tax:           totals.TaxAmount,
		Total:         totals.Total,
		CheckoutState: h.checkout.State().String(),
	}
}
