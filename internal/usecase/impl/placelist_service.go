package impl

import (
	"context"
	"log/slog"

	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/repository"
	"kuliner/internal/domain/service"
	"kuliner/internal/usecase"

	"github.com/pkg/errors"
)

// placeListService implements the PlaceListUsecase interface.
type placeListService struct {
	placeListRepo  repository.PlaceListRepository
	restaurantRepo repository.RestaurantRepository
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// NewPlaceListService is the constructor for placeListService.
func NewPlaceListService(
	placeListRepo repository.PlaceListRepository,
	restaurantRepo repository.RestaurantRepository,
	qrCodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.PlaceListUsecase {
	return &placeListService{
		placeListRepo:  placeListRepo,
		restaurantRepo: restaurantRepo,
		qrCodeService:  qrCodeService,
		logger:         logger,
	}
}

// GetPlaceList returns the owner's list hydrated with restaurant details.
// Not having a list yet is a normal state, not an error.
func (srv *placeListService) GetPlaceList(ctx context.Context, ownerID string) (*usecase.PlaceListOutput, error) {
	list, err := srv.placeListRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceListNotFound) {
			return &usecase.PlaceListOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to find place list")
	}

	restaurants, err := srv.restaurantRepo.FindByIDs(ctx, list.RestaurantIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hydrate place list restaurants")
	}

	return &usecase.PlaceListOutput{
		List:        list,
		Restaurants: restaurants,
	}, nil
}

// CreatePlaceList creates the owner's single list with empty membership.
func (srv *placeListService) CreatePlaceList(ctx context.Context, input *usecase.CreatePlaceListInput) (*entity.PlaceList, error) {
	list := &entity.PlaceList{
		CreatorID:     input.CreatorID,
		Title:         input.Title,
		Notes:         input.Notes,
		IsPublic:      input.IsPublic,
		RestaurantIDs: []string{},
	}

	if err := srv.placeListRepo.Create(ctx, list); err != nil {
		if errors.Is(err, repository.ErrPlaceListExists) {
			return nil, domainerrors.ErrPlaceListAlreadyExists.WrapMessage("place list creation failed")
		}

		return nil, errors.Wrap(err, "failed to create place list")
	}

	srv.logger.Info("Place list created", "ownerID", input.CreatorID)

	return list, nil
}

// AddRestaurant bookmarks a restaurant in the owner's list. The list must
// already exist; a duplicate add is a no-op.
func (srv *placeListService) AddRestaurant(ctx context.Context, ownerID, restaurantID string) error {
	// Reject bookmarks for restaurants that are not in the catalog.
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("bookmark failed")
		}

		return errors.Wrap(err, "failed to check restaurant for bookmark")
	}

	if err := srv.placeListRepo.AddRestaurant(ctx, ownerID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrPlaceListNotFound) {
			return domainerrors.ErrPlaceListNotFound.WrapMessage("bookmark failed")
		}

		return errors.Wrap(err, "failed to add restaurant to place list")
	}

	return nil
}

// RemoveRestaurant removes the bookmark from the owner's list.
func (srv *placeListService) RemoveRestaurant(ctx context.Context, ownerID, restaurantID string) error {
	if err := srv.placeListRepo.RemoveRestaurant(ctx, ownerID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrPlaceListNotFound) {
			return domainerrors.ErrPlaceListNotFound.WrapMessage("unbookmark failed")
		}

		return errors.Wrap(err, "failed to remove restaurant from place list")
	}

	return nil
}

// IsBookmarked reports whether the restaurant is in the owner's list.
// No list means not bookmarked.
func (srv *placeListService) IsBookmarked(ctx context.Context, ownerID, restaurantID string) (bool, error) {
	list, err := srv.placeListRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceListNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find place list for bookmark check")
	}

	return list.Contains(restaurantID), nil
}

// SharePlaceListQR renders the share QR code for the owner's list. Private
// lists cannot be shared.
func (srv *placeListService) SharePlaceListQR(ctx context.Context, ownerID string) ([]byte, error) {
	list, err := srv.placeListRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceListNotFound) {
			return nil, domainerrors.ErrPlaceListNotFound.WrapMessage("share failed")
		}

		return nil, errors.Wrap(err, "failed to find place list for sharing")
	}

	if !list.IsPublic {
		return nil, domainerrors.ErrPlaceListPrivate.WrapMessage("share failed")
	}

	png, err := srv.qrCodeService.GeneratePlaceListQR(list.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate place list QR code")
	}

	return png, nil
}
