package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/service"
	"kuliner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	store     *memStore
	media     *fakeMediaStorage
	publisher *fakeEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	t.Helper()

	store := newMemStore()
	media := &fakeMediaStorage{}
	publisher := &fakeEventPublisher{}

	svc := NewReviewService(
		&memTxManager{store: store},
		&memReviewRepo{store: store},
		&memRestaurantRepo{store: store},
		media,
		publisher,
		slog.Default(),
	)

	return reviewServiceFixtures{service: svc, store: store, media: media, publisher: publisher}
}

func validSubmission() *usecase.SubmitReviewInput {
	return &usecase.SubmitReviewInput{
		UserID:         "user-1",
		RestaurantID:   "r1",
		Description:    "Sotonya mantap, kuahnya gurih.",
		FoodRating:     4.5,
		ServiceRating:  4.0,
		AmbianceRating: 3.5,
	}
}

func (fx reviewServiceFixtures) seedAuthorAndRestaurant() {
	fx.store.users["user-1"] = &entity.User{ID: "user-1", Name: "Budi"}
	fx.store.restaurants["r1"] = &entity.Restaurant{ID: "r1", Name: "Soto Betawi H. Mamat"}
}

func TestReviewService_SubmitReview(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()

	review, err := fx.service.SubmitReview(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.InDelta(t, 4.0, review.AverageRating, 1e-9)
	assert.Equal(t, 0, review.Likes)
	assert.Empty(t, review.LikedBy)

	// The author's review count moved in the same operation.
	assert.Equal(t, 1, fx.store.users["user-1"].ReviewCount)

	// A created event went out.
	require.Len(t, fx.publisher.events, 1)
	assert.Equal(t, service.ReviewEventCreated, fx.publisher.events[0].Type)
	assert.Equal(t, review.ID, fx.publisher.events[0].ReviewID)
}

func TestReviewService_SubmitReview_WithMedia(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()

	input := validSubmission()
	input.Photos = []usecase.MediaUpload{
		{Filename: "a.jpg", ContentType: "image/jpeg", Content: strings.NewReader("a")},
		{Filename: "b.jpg", ContentType: "image/jpeg", Content: strings.NewReader("b")},
	}
	input.Video = &usecase.MediaUpload{Filename: "v.mp4", ContentType: "video/mp4", Content: strings.NewReader("v")}

	review, err := fx.service.SubmitReview(context.Background(), input)
	require.NoError(t, err)

	assert.Len(t, review.PhotoURLs, 2)
	assert.NotEmpty(t, review.VideoURL)
	assert.Len(t, fx.media.uploads, 3)
}

func TestReviewService_SubmitReview_Validation(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()

	tests := []struct {
		name    string
		mutate  func(*usecase.SubmitReviewInput)
		wantErr error
	}{
		{"empty description", func(in *usecase.SubmitReviewInput) { in.Description = "   " }, domainerrors.ErrValidationFailed},
		{"unrated food", func(in *usecase.SubmitReviewInput) { in.FoodRating = 0 }, domainerrors.ErrRatingOutOfRange},
		{"negative service", func(in *usecase.SubmitReviewInput) { in.ServiceRating = -1 }, domainerrors.ErrRatingOutOfRange},
		{"ambiance above five", func(in *usecase.SubmitReviewInput) { in.AmbianceRating = 5.5 }, domainerrors.ErrRatingOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmission()
			tt.mutate(input)

			review, err := fx.service.SubmitReview(context.Background(), input)
			assert.Nil(t, review)
			assert.True(t, errors.Is(err, tt.wantErr))

			// Validation failures never touch the store or the bucket.
			assert.Empty(t, fx.store.reviews)
			assert.Empty(t, fx.media.uploads)
		})
	}
}

func TestReviewService_SubmitReview_UnknownRestaurant(t *testing.T) {
	fx := createTestReviewService(t)
	fx.store.users["user-1"] = &entity.User{ID: "user-1"}

	review, err := fx.service.SubmitReview(context.Background(), validSubmission())
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
	assert.Empty(t, fx.media.uploads)
}

func TestReviewService_SubmitReview_UploadFailure(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()
	fx.media.failAll = true

	input := validSubmission()
	input.Photos = []usecase.MediaUpload{{Filename: "a.jpg", ContentType: "image/jpeg", Content: strings.NewReader("a")}}

	review, err := fx.service.SubmitReview(context.Background(), input)
	assert.Nil(t, review)
	assert.Error(t, err)

	// A failed upload leaves no review and no count movement.
	assert.Empty(t, fx.store.reviews)
	assert.Equal(t, 0, fx.store.users["user-1"].ReviewCount)
}

func TestReviewService_ToggleLike(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()

	review, err := fx.service.SubmitReview(context.Background(), validSubmission())
	require.NoError(t, err)

	// First toggle likes.
	out, err := fx.service.ToggleLike(context.Background(), review.ID, "user-2")
	require.NoError(t, err)

	assert.Equal(t, entity.LikeState{IsLiked: true, LikeCount: 1}, out.Speculative)
	assert.Equal(t, entity.LikeState{IsLiked: true, LikeCount: 1}, out.Authoritative)

	stored := fx.store.reviews[review.ID]
	assert.Equal(t, 1, stored.Likes)
	assert.Equal(t, []string{"user-2"}, stored.LikedBy)

	// Second toggle unlikes.
	out, err = fx.service.ToggleLike(context.Background(), review.ID, "user-2")
	require.NoError(t, err)

	assert.Equal(t, entity.LikeState{IsLiked: false, LikeCount: 0}, out.Speculative)
	assert.Equal(t, entity.LikeState{IsLiked: false, LikeCount: 0}, out.Authoritative)

	assert.Equal(t, 0, stored.Likes)
	assert.Empty(t, stored.LikedBy)
}

func TestReviewService_ToggleLike_PublishesOnlyOnLike(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()

	review, err := fx.service.SubmitReview(context.Background(), validSubmission())
	require.NoError(t, err)

	created := len(fx.publisher.events)

	_, err = fx.service.ToggleLike(context.Background(), review.ID, "user-2")
	require.NoError(t, err)
	require.Len(t, fx.publisher.events, created+1)
	assert.Equal(t, service.ReviewEventLiked, fx.publisher.events[created].Type)

	// The unlike does not publish.
	_, err = fx.service.ToggleLike(context.Background(), review.ID, "user-2")
	require.NoError(t, err)
	assert.Len(t, fx.publisher.events, created+1)
}

func TestReviewService_ToggleLike_MissingReview(t *testing.T) {
	fx := createTestReviewService(t)

	out, err := fx.service.ToggleLike(context.Background(), "ghost", "user-2")
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	// The speculative flip is still reported so the client can roll back.
	require.NotNil(t, out)
	assert.Equal(t, entity.LikeState{IsLiked: true, LikeCount: 1}, out.Speculative)
}

func TestReviewService_HasLiked(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()

	review, err := fx.service.SubmitReview(context.Background(), validSubmission())
	require.NoError(t, err)

	state, err := fx.service.HasLiked(context.Background(), review.ID, "user-2")
	require.NoError(t, err)
	assert.Equal(t, entity.LikeState{IsLiked: false, LikeCount: 0}, state)

	_, err = fx.service.ToggleLike(context.Background(), review.ID, "user-2")
	require.NoError(t, err)

	state, err = fx.service.HasLiked(context.Background(), review.ID, "user-2")
	require.NoError(t, err)
	assert.Equal(t, entity.LikeState{IsLiked: true, LikeCount: 1}, state)

	// Someone else's like does not read as mine.
	state, err = fx.service.HasLiked(context.Background(), review.ID, "user-3")
	require.NoError(t, err)
	assert.Equal(t, entity.LikeState{IsLiked: false, LikeCount: 1}, state)
}

func TestReviewService_HasLiked_MissingReview(t *testing.T) {
	fx := createTestReviewService(t)

	state, err := fx.service.HasLiked(context.Background(), "ghost", "user-2")
	require.NoError(t, err)
	assert.Equal(t, entity.LikeState{}, state)
}

func TestReviewService_ListByRestaurantAndUser(t *testing.T) {
	fx := createTestReviewService(t)
	fx.seedAuthorAndRestaurant()
	fx.store.restaurants["r2"] = &entity.Restaurant{ID: "r2", Name: "Bakso Pak Min"}

	first, err := fx.service.SubmitReview(context.Background(), validSubmission())
	require.NoError(t, err)

	second := validSubmission()
	second.RestaurantID = "r2"
	_, err = fx.service.SubmitReview(context.Background(), second)
	require.NoError(t, err)

	byRestaurant, err := fx.service.ListRestaurantReviews(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, byRestaurant, 1)
	assert.Equal(t, first.ID, byRestaurant[0].ID)

	byUser, err := fx.service.ListUserReviews(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}
