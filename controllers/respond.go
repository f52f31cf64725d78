// Package controllers is the thin REST layer over the entity repositories:
// bind the payload, call the repository, translate the error taxonomy into
// status codes. No business logic lives here.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/apperr"
)

func writeError(c *gin.Context, err error) {
	if ve, ok := apperr.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "validation failed",
			"violations": ve.Violations,
		})
		return
	}
	switch {
	case apperr.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.IsRetryable(err):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "storage timed out, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badPayload(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
}
