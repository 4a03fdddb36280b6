package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizzas"))
		return
	}

	response := make([]models.PizzaSummary, 0, len(pizzas))
	for _, pizza := range pizzas {
		response = append(response, pizza.Summary())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizzaID, ok := paramID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), pizzaID)
	if err != nil {
		if !errors.Is(err, services.ErrPizzaNotFound) {
			middleware.Logger(ctx).WithError(err).Error("Pizza lookup failed")
		}
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
		return
	}
	ctx.JSON(http.StatusOK, pizza.Summary())
}
