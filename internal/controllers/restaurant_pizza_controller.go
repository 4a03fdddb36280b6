package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a priced pizza to a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Put a pizza on a restaurant menu at the given price
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaRequest true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	// A body that is not a JSON object leaves every field empty, so each one is reported
	var req models.RestaurantPizzaRequest
	_ = ctx.ShouldBindJSON(&req)

	input, validationErrors := req.Validate()
	if len(validationErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErrors...))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, created.Created())
	case errors.Is(err, services.ErrPizzaNotFound), errors.Is(err, services.ErrRestaurantNotFound):
		ctx.JSON(http.StatusNotFound, models.NewValidationErrorResponse(models.MsgPizzaOrRestaurantMissing))
	default:
		middleware.Logger(ctx).WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
	}
}
