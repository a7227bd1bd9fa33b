package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/apierror"
	"github.com/hamaza7867/POS-NEW/internal/dto"
	"github.com/hamaza7867/POS-NEW/internal/service"
)

type ProductsHandler struct {
	svc service.ProductService
}

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List returns the catalog filtered by search, category and sort order.
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	products := h.svc.List(service.ListFilter{
		Search:   filter.Search,
		Category: filter.Category,
		Sort:     filter.Sort,
	})
	c.JSON(http.StatusOK, products)
}

// Create adds a catalog product, minting an id and SKU as needed.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Create(req.Name, req.Price, req.SKU, req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Delete removes a product by id.
func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Could not delete product"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories returns the distinct category labels.
func (h *ProductsHandler) Categories(c *gin.Context) {
	categories := h.svc.Categories()
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}
