package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/apierror"
	"github.com/hamaza7867/POS-NEW/internal/dto"
	"github.com/hamaza7867/POS-NEW/internal/model"
	"github.com/hamaza7867/POS-NEW/internal/service"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Get())
}

// Update replaces the shop settings wholesale.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	settings := model.Settings{
		ShopName:      req.ShopName,
		ShopAddress:   req.ShopAddress,
		ShopPhone:     req.ShopPhone,
		ReceiptFooter: req.ReceiptFooter,
		TaxRate:       req.TaxRate,
		SalesLayout:   req.SalesLayout,
		SoundEnabled:  req.SoundEnabled,
	}
	if err := h.svc.Update(settings); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, settings)
}
