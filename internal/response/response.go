// Package response defines the HTTP response envelope and the mapping from
// domain error kinds to status codes. Formatting errors for the wire happens
// only here; the core surfaces tagged kinds.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
)

// Success writes a 200 envelope around data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 envelope around data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// Paginated writes a 200 envelope with pagination metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"meta": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Error maps a domain error to an HTTP status and writes it.
func Error(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindValidation, domain.KindReference:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInvalidTransition:
		status = http.StatusConflict
	case domain.KindStorage:
		status = http.StatusInternalServerError
	}

	body := gin.H{"success": false, "error": de.Message, "kind": string(de.Kind)}
	if de.Kind == domain.KindStorage {
		// Do not leak driver details to clients.
		body["error"] = "storage failure, retry the operation"
	}
	c.JSON(status, body)
}
