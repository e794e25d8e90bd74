package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kuliner/internal/delivery/http/response"
	"kuliner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for catalog handlers.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	reviewUC     usecase.ReviewUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(restaurantUC usecase.RestaurantUsecase, reviewUC usecase.ReviewUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		reviewUC:     reviewUC,
		logger:       logger,
	}
}

// ListRestaurants lists the catalog. With lat/lng query parameters it
// switches to a nearby search sorted closest first.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")

	if latParam == "" && lngParam == "" {
		restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toRestaurantResponses(restaurants), "Restaurants retrieved successfully")
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
	}

	input := &usecase.NearbyInput{Latitude: lat, Longitude: lng}
	if radiusParam := c.QueryParam("radius"); radiusParam != "" {
		radius, err := strconv.ParseFloat(radiusParam, 64)
		if err != nil || radius <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "radius must be a positive number")
		}
		input.RadiusMeters = radius
	}

	results, err := h.restaurantUC.NearbyRestaurants(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNearbyResponses(results), "Nearby restaurants retrieved successfully")
}

// GetRestaurant returns a single restaurant by ID.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id := c.Param("id")

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRestaurantResponse(restaurant), "Restaurant retrieved successfully")
}

// ListRestaurantReviews lists a restaurant's reviews, newest first.
func (h *RestaurantHandler) ListRestaurantReviews(c echo.Context) error {
	id := c.Param("id")

	reviews, err := h.reviewUC.ListRestaurantReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews), "Reviews retrieved successfully")
}
