package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"kuliner/internal/delivery/http/middleware"
	"kuliner/internal/delivery/http/response"
	"kuliner/internal/domain/entity"
	"kuliner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitReview handles a multipart review submission with optional photos
// and a video.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := &usecase.SubmitReviewInput{
		UserID:       userID,
		RestaurantID: c.Param("id"),
		Description:  c.FormValue("description"),
	}

	ratings := []struct {
		field string
		dst   *float64
	}{
		{"foodRating", &input.FoodRating},
		{"serviceRating", &input.ServiceRating},
		{"ambianceRating", &input.AmbianceRating},
	}
	for _, r := range ratings {
		value, err := strconv.ParseFloat(c.FormValue(r.field), 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", r.field+" must be a number")
		}
		*r.dst = value
	}

	form, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	var openedFiles []multipart.File
	defer func() {
		for _, f := range openedFiles {
			f.Close()
		}
	}()

	if form != nil {
		for _, header := range form.File["photos"] {
			file, err := header.Open()
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded photo")
			}
			openedFiles = append(openedFiles, file)

			input.Photos = append(input.Photos, usecase.MediaUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Content:     file,
			})
		}

		if videos := form.File["video"]; len(videos) > 0 {
			file, err := videos[0].Open()
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded video")
			}
			openedFiles = append(openedFiles, file)

			input.Video = &usecase.MediaUpload{
				Filename:    videos[0].Filename,
				ContentType: videos[0].Header.Get("Content-Type"),
				Content:     file,
			}
		}
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review submitted successfully")
}

// GetReview returns a single review by ID.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.uc.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review retrieved successfully")
}

type toggleLikeResponse struct {
	Speculative   entity.LikeState `json:"speculative"`
	Authoritative entity.LikeState `json:"authoritative"`
}

// ToggleLike flips the caller's like on a review and returns both the
// optimistic and the committed state.
func (h *ReviewHandler) ToggleLike(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.ToggleLike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toggleLikeResponse{
		Speculative:   output.Speculative,
		Authoritative: output.Authoritative,
	}, "Like toggled successfully")
}

// HasLiked reports the caller's current like state for a review.
func (h *ReviewHandler) HasLiked(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.uc.HasLiked(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Like state retrieved successfully")
}
