package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/repository"
	"kuliner/internal/domain/service"
	"kuliner/internal/usecase"

	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager      repository.TransactionManager
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	mediaStorage   service.MediaStorage
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	reviewRepo repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
	mediaStorage service.MediaStorage,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:      txManager,
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		mediaStorage:   mediaStorage,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// SubmitReview validates, stores media, and creates the review. The review
// create and the author's review-count increment commit in one transaction.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	// Make sure the restaurant exists before uploading anything.
	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("review submission failed")
		}

		return nil, errors.Wrap(err, "failed to check restaurant for review")
	}

	photoURLs, videoURL, err := srv.uploadMedia(ctx, input)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		RestaurantID:   input.RestaurantID,
		UserID:         input.UserID,
		Description:    strings.TrimSpace(input.Description),
		FoodRating:     input.FoodRating,
		ServiceRating:  input.ServiceRating,
		AmbianceRating: input.AmbianceRating,
		AverageRating:  entity.AverageOf(input.FoodRating, input.ServiceRating, input.AmbianceRating),
		PhotoURLs:      photoURLs,
		VideoURL:       videoURL,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(repoFactory.UserRepo().IncrementReviewCount(ctx, input.UserID, 1))
	})
	if err != nil {
		srv.logger.Error("Failed to execute review submission transaction",
			"error", err, "userID", input.UserID, "restaurantID", input.RestaurantID)

		return nil, errors.Wrap(err, "failed to execute review submission transaction")
	}

	srv.publishEvent(ctx, &service.ReviewEvent{
		Type:         service.ReviewEventCreated,
		ReviewID:     review.ID,
		RestaurantID: review.RestaurantID,
		UserID:       review.UserID,
		Rating:       review.AverageRating,
	})

	srv.logger.Info("Review submitted", "reviewID", review.ID, "restaurantID", review.RestaurantID)

	return review, nil
}

// GetReview returns a single review by ID.
func (srv *reviewService) GetReview(ctx context.Context, reviewID string) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WrapMessage("review lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListRestaurantReviews returns all reviews for a restaurant.
func (srv *reviewService) ListRestaurantReviews(ctx context.Context, restaurantID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant reviews")
	}

	return reviews, nil
}

// ListUserReviews returns all reviews written by a user.
func (srv *reviewService) ListUserReviews(ctx context.Context, userID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

// ToggleLike flips the user's like on a review. The toggle direction comes
// from a fresh read inside the transaction, so two racing toggles cannot
// both add or both remove. The optimistic pre-store state is returned
// alongside the committed one.
func (srv *reviewService) ToggleLike(ctx context.Context, reviewID, userID string) (*usecase.ToggleLikeOutput, error) {
	current, err := srv.HasLiked(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	out := &usecase.ToggleLikeOutput{
		Speculative: entity.SpeculateLikeToggle(current),
	}

	var liked bool

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return errors.WithStack(err)
		}

		if review.IsLikedBy(userID) {
			liked = false
			out.Authoritative = entity.LikeState{IsLiked: false, LikeCount: review.Likes - 1}

			return errors.WithStack(reviewRepo.RemoveLike(ctx, reviewID, userID))
		}

		liked = true
		out.Authoritative = entity.LikeState{IsLiked: true, LikeCount: review.Likes + 1}

		return errors.WithStack(reviewRepo.AddLike(ctx, reviewID, userID))
	})
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return out, domainerrors.ErrReviewNotFound.WrapMessage("like toggle failed")
		}

		return out, errors.Wrap(err, "failed to execute like toggle transaction")
	}

	if liked {
		srv.publishEvent(ctx, &service.ReviewEvent{
			Type:     service.ReviewEventLiked,
			ReviewID: reviewID,
			UserID:   userID,
			Likes:    out.Authoritative.LikeCount,
		})
	}

	return out, nil
}

// HasLiked reports the user's like state for a review. A missing review
// reads as not liked with a zero count.
func (srv *reviewService) HasLiked(ctx context.Context, reviewID, userID string) (entity.LikeState, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return entity.LikeState{}, nil
		}

		return entity.LikeState{}, errors.Wrap(err, "failed to find review for like state")
	}

	return entity.LikeState{
		IsLiked:   review.IsLikedBy(userID),
		LikeCount: review.Likes,
	}, nil
}

// uploadMedia stores the submission's photos and video, returning their
// public URLs. Uploads happen before the review transaction so a failed
// upload never leaves a half-written review.
func (srv *reviewService) uploadMedia(ctx context.Context, input *usecase.SubmitReviewInput) ([]string, string, error) {
	folder := "reviews/" + input.RestaurantID

	photoURLs := make([]string, 0, len(input.Photos))
	for _, photo := range input.Photos {
		url, err := srv.mediaStorage.Upload(ctx, folder, photo.Filename, photo.ContentType, photo.Content)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to upload review photo")
		}

		photoURLs = append(photoURLs, url)
	}

	videoURL := ""
	if input.Video != nil {
		url, err := srv.mediaStorage.Upload(ctx, folder, input.Video.Filename, input.Video.ContentType, input.Video.Content)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to upload review video")
		}

		videoURL = url
	}

	return photoURLs, videoURL, nil
}

// publishEvent sends a review event without failing the request. Event
// delivery is best effort; the review itself is already committed.
func (srv *reviewService) publishEvent(ctx context.Context, event *service.ReviewEvent) {
	if err := srv.eventPublisher.PublishReviewEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish review event",
			"error", err, "type", event.Type, "reviewID", event.ReviewID)
	}
}

// validateSubmission rejects empty descriptions and out-of-range ratings
// before any store or upload call happens.
func validateSubmission(input *usecase.SubmitReviewInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("review description is required")
	}

	ratings := map[string]float64{
		"food":     input.FoodRating,
		"service":  input.ServiceRating,
		"ambiance": input.AmbianceRating,
	}
	for name, rating := range ratings {
		// Zero means the dimension was left unrated, which is rejected the
		// same way an out-of-range value is.
		if rating <= 0 || rating > 5 {
			return domainerrors.ErrRatingOutOfRange.WrapMessage(fmt.Sprintf("%s rating must be in (0, 5]", name))
		}
	}

	return nil
}
