package impl

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"kuliner/internal/domain/entity"
	"kuliner/internal/domain/repository"
	"kuliner/internal/domain/service"
)

// memStore is a shared in-memory backing store for the repository fakes,
// standing in for the document store in usecase tests.
type memStore struct {
	users       map[string]*entity.User
	credentials []*entity.Credential
	sessions    map[string]*entity.Session
	restaurants map[string]*entity.Restaurant
	reviews     map[string]*entity.Review
	placeLists  map[string]*entity.PlaceList
	seq         int
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]*entity.User),
		sessions:    make(map[string]*entity.Session),
		restaurants: make(map[string]*entity.Restaurant),
		reviews:     make(map[string]*entity.Review),
		placeLists:  make(map[string]*entity.PlaceList),
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++

	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// --- repository fakes ---

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = r.store.nextID("user")
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id string, name, handle *string) error {
	user, ok := r.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	if name != nil {
		user.Name = *name
	}
	if handle != nil {
		user.Handle = *handle
	}
	user.UpdatedAt = time.Now()

	return nil
}

func (r *memUserRepo) IncrementReviewCount(_ context.Context, id string, delta int) error {
	user, ok := r.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.ReviewCount += delta

	return nil
}

type memCredentialRepo struct{ store *memStore }

func (r *memCredentialRepo) FindByProvider(_ context.Context, provider entity.ProviderType, providerUserID string) (*entity.Credential, error) {
	for _, credential := range r.store.credentials {
		if credential.Provider == provider && credential.ProviderUserID == providerUserID {
			copied := *credential

			return &copied, nil
		}
	}

	return nil, repository.ErrCredentialNotFound
}

func (r *memCredentialRepo) Create(_ context.Context, credential *entity.Credential) error {
	credential.ID = r.store.nextID("cred")
	credential.CreatedAt = time.Now()

	copied := *credential
	r.store.credentials = append(r.store.credentials, &copied)

	return nil
}

type memSessionRepo struct{ store *memStore }

func (r *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	session.ID = r.store.nextID("sess")
	session.CreatedAt = time.Now()

	copied := *session
	r.store.sessions[session.TokenHash] = &copied

	return nil
}

func (r *memSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	session, ok := r.store.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	copied := *session

	return &copied, nil
}

func (r *memSessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	delete(r.store.sessions, tokenHash)

	return nil
}

type memRestaurantRepo struct{ store *memStore }

func (r *memRestaurantRepo) List(_ context.Context) ([]*entity.Restaurant, error) {
	restaurants := make([]*entity.Restaurant, 0, len(r.store.restaurants))
	for _, restaurant := range r.store.restaurants {
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

func (r *memRestaurantRepo) FindByID(_ context.Context, id string) (*entity.Restaurant, error) {
	restaurant, ok := r.store.restaurants[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	return restaurant, nil
}

func (r *memRestaurantRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Restaurant, error) {
	restaurants := make([]*entity.Restaurant, 0, len(ids))
	for _, id := range ids {
		if restaurant, ok := r.store.restaurants[id]; ok {
			restaurants = append(restaurants, restaurant)
		}
	}

	return restaurants, nil
}

type memReviewRepo struct{ store *memStore }

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.ID = r.store.nextID("review")
	review.CreatedAt = time.Now()

	copied := *review
	if copied.LikedBy == nil {
		copied.LikedBy = []string{}
	}
	r.store.reviews[review.ID] = &copied

	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id string) (*entity.Review, error) {
	review, ok := r.store.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	copied := *review
	copied.LikedBy = slices.Clone(review.LikedBy)

	return &copied, nil
}

func (r *memReviewRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range r.store.reviews {
		if review.RestaurantID == restaurantID {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

func (r *memReviewRepo) ListByUser(_ context.Context, userID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range r.store.reviews {
		if review.UserID == userID {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

func (r *memReviewRepo) AddLike(_ context.Context, reviewID, userID string) error {
	review, ok := r.store.reviews[reviewID]
	if !ok {
		return repository.ErrReviewNotFound
	}

	review.Likes++
	if !slices.Contains(review.LikedBy, userID) {
		review.LikedBy = append(review.LikedBy, userID)
	}

	return nil
}

func (r *memReviewRepo) RemoveLike(_ context.Context, reviewID, userID string) error {
	review, ok := r.store.reviews[reviewID]
	if !ok {
		return repository.ErrReviewNotFound
	}

	review.Likes--
	review.LikedBy = slices.DeleteFunc(review.LikedBy, func(id string) bool { return id == userID })

	return nil
}

type memPlaceListRepo struct{ store *memStore }

func (r *memPlaceListRepo) FindByOwner(_ context.Context, ownerID string) (*entity.PlaceList, error) {
	list, ok := r.store.placeLists[ownerID]
	if !ok {
		return nil, repository.ErrPlaceListNotFound
	}

	copied := *list
	copied.RestaurantIDs = slices.Clone(list.RestaurantIDs)

	return &copied, nil
}

func (r *memPlaceListRepo) Create(_ context.Context, list *entity.PlaceList) error {
	if _, ok := r.store.placeLists[list.CreatorID]; ok {
		return repository.ErrPlaceListExists
	}

	list.ID = list.CreatorID
	list.CreatedAt = time.Now()

	copied := *list
	copied.RestaurantIDs = slices.Clone(list.RestaurantIDs)
	r.store.placeLists[list.CreatorID] = &copied

	return nil
}

func (r *memPlaceListRepo) AddRestaurant(_ context.Context, ownerID, restaurantID string) error {
	list, ok := r.store.placeLists[ownerID]
	if !ok {
		return repository.ErrPlaceListNotFound
	}

	if !slices.Contains(list.RestaurantIDs, restaurantID) {
		list.RestaurantIDs = append(list.RestaurantIDs, restaurantID)
	}

	return nil
}

func (r *memPlaceListRepo) RemoveRestaurant(_ context.Context, ownerID, restaurantID string) error {
	list, ok := r.store.placeLists[ownerID]
	if !ok {
		return repository.ErrPlaceListNotFound
	}

	list.RestaurantIDs = slices.DeleteFunc(list.RestaurantIDs, func(id string) bool { return id == restaurantID })

	return nil
}

// memRepoFactory hands out fakes bound to the shared store.
type memRepoFactory struct{ store *memStore }

func (f *memRepoFactory) UserRepo() repository.UserRepository {
	return &memUserRepo{store: f.store}
}

func (f *memRepoFactory) CredentialRepo() repository.CredentialRepository {
	return &memCredentialRepo{store: f.store}
}
func (f *memRepoFactory) ReviewRepo() repository.ReviewRepository {
	return &memReviewRepo{store: f.store}
}

func (f *memRepoFactory) PlaceListRepo() repository.PlaceListRepository {
	return &memPlaceListRepo{store: f.store}
}

// memTxManager runs the function against the shared store directly.
type memTxManager struct{ store *memStore }

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memRepoFactory{store: m.store})
}

// --- service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

type fakeTokenService struct{}

func (fakeTokenService) GenerateTokens(userID string) (string, string, error) {
	return "access." + userID, "refresh." + userID, nil
}

func (fakeTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	userID, ok := strings.CutPrefix(tokenString, "access.")
	if !ok {
		return nil, fmt.Errorf("invalid access token %q", tokenString)
	}

	return &service.Claims{UserID: userID, Type: "access"}, nil
}

func (fakeTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	userID, ok := strings.CutPrefix(tokenString, "refresh.")
	if !ok {
		return nil, fmt.Errorf("invalid refresh token %q", tokenString)
	}

	return &service.Claims{UserID: userID, Type: "refresh"}, nil
}

func (fakeTokenService) HashToken(token string) string { return "h:" + token }

func (fakeTokenService) GetRefreshTokenDuration() time.Duration { return 7 * 24 * time.Hour }

type fakeOAuthService struct {
	users map[string]*service.OAuthUser
}

func (s *fakeOAuthService) VerifyIDToken(_ context.Context, idToken string) (*service.OAuthUser, error) {
	user, ok := s.users[idToken]
	if !ok {
		return nil, fmt.Errorf("unknown id token %q", idToken)
	}

	return user, nil
}

type fakeMediaStorage struct {
	uploads []string
	failAll bool
}

func (s *fakeMediaStorage) Upload(_ context.Context, folder, filename, _ string, content io.Reader) (string, error) {
	if s.failAll {
		return "", fmt.Errorf("upload failed for %s", filename)
	}

	// Drain the reader the way a real bucket writer would.
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}

	url := "https://media.test/" + folder + "/" + filename
	s.uploads = append(s.uploads, url)

	return url, nil
}

func (s *fakeMediaStorage) Close() error { return nil }

type fakeEventPublisher struct {
	events []*service.ReviewEvent
}

func (p *fakeEventPublisher) PublishReviewEvent(_ context.Context, event *service.ReviewEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *fakeEventPublisher) Close() error { return nil }

type fakeQRCodeService struct{}

func (fakeQRCodeService) GeneratePlaceListQR(listID string) ([]byte, error) {
	return []byte("png:" + listID), nil
}
