package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant and the pizzas it serves
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}

	response := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		response = append(response, restaurant.Summary())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with every pizza it serves and its price
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.RestaurantErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	notFound := models.RestaurantErrorResponse{Error: models.MsgRestaurantDetailNotFound}

	restaurantID, ok := paramID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, notFound)
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), restaurantID)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, restaurant.Detail())
	case errors.Is(err, services.ErrRestaurantNotFound):
		ctx.JSON(http.StatusNotFound, notFound)
	default:
		// Lookup failures are reported like a missing restaurant
		middleware.Logger(ctx).WithError(err).Error("Restaurant lookup failed")
		ctx.JSON(http.StatusNotFound, notFound)
	}
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and all the restaurant pizzas that reference it
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	restaurantID, ok := paramID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	err := c.service.DeleteRestaurant(ctx.Request.Context(), restaurantID)
	switch {
	case err == nil:
		ctx.Status(http.StatusNoContent)
	case errors.Is(err, services.ErrRestaurantNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
	default:
		middleware.Logger(ctx).WithError(err).WithField("restaurant_id", restaurantID).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
	}
}
