package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/apierror"
	"github.com/hamaza7867/POS-NEW/internal/service"
)

// maxImportSize bounds an uploaded backup file (catalog + settings only).
const maxImportSize = 8 << 20 // 8 MiB

type BackupHandler struct {
	svc service.BackupService
}

func NewBackupHandler(svc service.BackupService) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// ExportJSON downloads the full backup payload.
func (h *BackupHandler) ExportJSON(c *gin.Context) {
	payload, err := h.svc.ExportJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not export backup"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pos-backup.json"`)
	c.JSON(http.StatusOK, payload)
}

// ExportCSV downloads the catalog as CSV.
func (h *BackupHandler) ExportCSV(c *gin.Context) {
	csvData, err := h.svc.ExportCSV()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not export CSV"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}

// StageImport parses an uploaded backup and holds it for review.
func (h *BackupHandler) StageImport(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read backup payload"))
		return
	}
	preview, err := h.svc.StageImport(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, preview)
}

// ConfirmImport applies the staged backup wholesale.
func (h *BackupHandler) ConfirmImport(c *gin.Context) {
	if err := h.svc.ConfirmImport(); err != nil {
		if errors.Is(err, service.ErrNoPendingImport) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// DiscardImport drops the staged backup without applying it.
func (h *BackupHandler) DiscardImport(c *gin.Context) {
	h.svc.DiscardImport()
	c.Status(http.StatusNoContent)
}
