package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/repository"
)

type TransactionsHandler struct {
	repo repository.TransactionRepository
}

func NewTransactionsHandler(repo repository.TransactionRepository) *TransactionsHandler {
	return &TransactionsHandler{repo: repo}
}

// List returns the transaction history, newest first, as stored.
func (h *TransactionsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Load())
}
