package firestore

import (
	"context"

	"kuliner/internal/domain/constants"
	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/repository"
	"kuliner/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// reviewRepository implements the domain.ReviewRepository interface using
// Firestore. A nil tx means operations run outside any transaction.
type reviewRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(client *fs.Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (repo *reviewRepository) reviews() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionReviews)
}

// Create persists a new review and fills in its assigned document ID.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	ref := repo.reviews().NewDoc()

	reviewM := fromReviewDomain(review)
	// The liker set starts out as an empty array, not a missing field, so
	// later ArrayUnion updates behave uniformly.
	if reviewM.LikedBy == nil {
		reviewM.LikedBy = []string{}
	}
	if reviewM.PhotoURLs == nil {
		reviewM.PhotoURLs = []string{}
	}

	if err := createDoc(ctx, repo.tx, ref, reviewM); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create review")
	}

	review.ID = ref.ID

	return nil
}

// FindByID retrieves a single review by its document ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	snap, err := getDoc(ctx, repo.tx, repo.reviews().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return decodeReview(snap)
}

// ListByRestaurant retrieves all reviews for a restaurant, newest first.
func (repo *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Review, error) {
	query := repo.reviews().
		Where("restaurantId", "==", restaurantID).
		OrderBy("createdAt", fs.Desc)

	return repo.collectReviews(ctx, query, "failed to list reviews by restaurant")
}

// ListByUser retrieves all reviews written by a user, newest first.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	query := repo.reviews().
		Where("userId", "==", userID).
		OrderBy("createdAt", fs.Desc)

	return repo.collectReviews(ctx, query, "failed to list reviews by user")
}

// AddLike atomically increments the like counter and adds the user to the
// liker set. ArrayUnion keeps the set free of duplicates even if the same
// user races their own toggle.
func (repo *reviewRepository) AddLike(ctx context.Context, reviewID, userID string) error {
	updates := []fs.Update{
		{Path: "likes", Value: fs.Increment(1)},
		{Path: "likedBy", Value: fs.ArrayUnion(userID)},
	}

	if err := updateDoc(ctx, repo.tx, repo.reviews().Doc(reviewID), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to add like")
	}

	return nil
}

// RemoveLike atomically decrements the like counter and removes the user
// from the liker set.
func (repo *reviewRepository) RemoveLike(ctx context.Context, reviewID, userID string) error {
	updates := []fs.Update{
		{Path: "likes", Value: fs.Increment(-1)},
		{Path: "likedBy", Value: fs.ArrayRemove(userID)},
	}

	if err := updateDoc(ctx, repo.tx, repo.reviews().Doc(reviewID), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to remove like")
	}

	return nil
}

func (repo *reviewRepository) collectReviews(ctx context.Context, query fs.Query, errMsg string) ([]*entity.Review, error) {
	iter := queryDocs(ctx, repo.tx, query)
	defer iter.Stop()

	var reviews []*entity.Review

	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errMsg)
		}

		review, err := decodeReview(snap)
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}

func decodeReview(snap *fs.DocumentSnapshot) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := snap.DataTo(&reviewM); err != nil {
		return nil, errors.Wrap(err, "failed to decode review document")
	}
	reviewM.ID = snap.Ref.ID

	return toReviewDomain(&reviewM), nil
}
