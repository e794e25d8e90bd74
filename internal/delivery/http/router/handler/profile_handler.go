package handler

import (
	"log/slog"
	"net/http"

	"kuliner/internal/delivery/http/middleware"
	"kuliner/internal/delivery/http/response"
	"kuliner/internal/domain/progression"
	"kuliner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and level-page handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, reviewUC usecase.ReviewUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		reviewUC:  reviewUC,
		logger:    logger,
	}
}

type profileResponse struct {
	User        *userResponse     `json:"user"`
	Progression progression.State `json:"progression"`
}

// GetProfile returns the authenticated user's profile with their derived
// progression state.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &profileResponse{
		User:        toUserResponse(output.User),
		Progression: output.Progression,
	}, "Profile retrieved successfully")
}

// UpdateProfileRequest represents the partial profile update body.
// Absent fields are left untouched.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Handle *string `json:"handle" validate:"omitempty,min=1"`
}

// UpdateProfile applies a partial update to the user's name and handle.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:   req.Name,
		Handle: req.Handle,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &profileResponse{
		User:        toUserResponse(output.User),
		Progression: output.Progression,
	}, "Profile updated successfully")
}

// GetMyReviews lists the authenticated user's reviews, newest first.
func (h *ProfileHandler) GetMyReviews(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviews, err := h.reviewUC.ListUserReviews(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews), "Reviews retrieved successfully")
}

type levelResponse struct {
	Tiers       []progression.Tier `json:"tiers"`
	Progression progression.State  `json:"progression"`
}

// GetLevelPage returns the full tier table plus the user's progression.
func (h *ProfileHandler) GetLevelPage(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.profileUC.GetLevelPage(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &levelResponse{
		Tiers:       output.Tiers,
		Progression: output.Progression,
	}, "Level page retrieved successfully")
}
