package handler

import (
	"log/slog"
	"net/http"

	"kuliner/internal/delivery/http/middleware"
	"kuliner/internal/delivery/http/response"
	"kuliner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceListHandler holds dependencies for bookmark-list handlers.
type PlaceListHandler struct {
	uc     usecase.PlaceListUsecase
	logger *slog.Logger
}

// NewPlaceListHandler is the constructor for PlaceListHandler, injected by Fx.
func NewPlaceListHandler(uc usecase.PlaceListUsecase, logger *slog.Logger) *PlaceListHandler {
	return &PlaceListHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPlaceList returns the caller's list hydrated with restaurant details.
// A caller without a list gets a null list, not an error.
func (h *PlaceListHandler) GetPlaceList(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.GetPlaceList(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceListResponse(output.List, output.Restaurants), "Place list retrieved successfully")
}

// CreatePlaceListRequest represents the request body for list creation.
type CreatePlaceListRequest struct {
	Title    string `json:"title" validate:"required"`
	Notes    string `json:"notes"`
	IsPublic bool   `json:"isPublic"`
}

// CreatePlaceList creates the caller's single bookmark list.
func (h *PlaceListHandler) CreatePlaceList(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePlaceListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place list input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	list, err := h.uc.CreatePlaceList(c.Request().Context(), &usecase.CreatePlaceListInput{
		CreatorID: userID,
		Title:     req.Title,
		Notes:     req.Notes,
		IsPublic:  req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlaceListResponse(list, nil), "Place list created successfully")
}

// AddRestaurant bookmarks a restaurant in the caller's list.
func (h *PlaceListHandler) AddRestaurant(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.AddRestaurant(c.Request().Context(), userID, c.Param("restaurantId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": true}, "Restaurant bookmarked successfully")
}

// RemoveRestaurant removes a bookmark from the caller's list.
func (h *PlaceListHandler) RemoveRestaurant(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.RemoveRestaurant(c.Request().Context(), userID, c.Param("restaurantId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": false}, "Restaurant removed successfully")
}

// IsBookmarked reports whether the restaurant is in the caller's list.
func (h *PlaceListHandler) IsBookmarked(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarked, err := h.uc.IsBookmarked(c.Request().Context(), userID, c.Param("restaurantId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": bookmarked}, "Bookmark state retrieved successfully")
}

// ShareQR renders the share QR code for the caller's public list as a PNG.
func (h *PlaceListHandler) ShareQR(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.SharePlaceListQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
