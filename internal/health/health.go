package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves liveness and readiness endpoints.
type Handler struct {
	db      *gorm.DB
	service string
}

// NewHandler creates a health Handler for the given service.
func NewHandler(db *gorm.DB, service string) *Handler {
	return &Handler{db: db, service: service}
}

// RegisterRoutes registers the health endpoints on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Live)
	r.GET("/health", h.Ready)
}

// Live reports basic process liveness; used by load balancers.
func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
	})
}

// Ready reports readiness including database connectivity.
func (h *Handler) Ready(c *gin.Context) {
	database := "connected"
	status := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   "healthy",
		"service":  h.service,
		"database": database,
	})
}
