package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthResponse is the body of the health check endpoint
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Database  string `json:"database" example:"up"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Service   string `json:"service" example:"pizza-restaurants-api"`
}

// HealthController reports whether the service and its database are reachable
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new instance of HealthController
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Health check
// @Description Check if the service is running and its database answers
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (hc *HealthController) Health(ctx *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Database:  "up",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "pizza-restaurants-api",
	}

	if err := hc.ping(ctx.Request.Context()); err != nil {
		middleware.Logger(ctx).WithError(err).Warn("Database ping failed")
		response.Status = "unhealthy"
		response.Database = "down"
		ctx.JSON(http.StatusServiceUnavailable, response)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (hc *HealthController) ping(ctx context.Context) error {
	sqlDB, err := hc.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Index godoc
// @Summary Landing page
// @Description Static HTML banner
// @Tags health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}
