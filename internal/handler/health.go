package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/infra"
)

// Health reports liveness plus the printer circuit breaker state.
func Health(printerCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		printer := "unconfigured"
		if printerCB != nil {
			printer = printerCB.State().String()
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"printer": printer,
		})
	}
}
