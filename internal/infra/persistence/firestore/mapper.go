package firestore

import (
	"strings"

	"kuliner/internal/domain/entity"
	"kuliner/internal/infra/persistence/model"

	"github.com/paulmach/orb"
)

// The mapping functions below convert between persistence models and pure
// domain entities, so the store's field names and tags never leak upward.

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		Name:        m.Name,
		Handle:      m.Handle,
		ReviewCount: m.ReviewCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Handle:      u.Handle,
		ReviewCount: u.ReviewCount,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:             m.ID,
		UserID:         m.UserID,
		Provider:       entity.ProviderType(m.Provider),
		ProviderUserID: m.ProviderUserID,
		PasswordHash:   m.PasswordHash,
		CreatedAt:      m.CreatedAt,
	}
}

func fromCredentialDomain(c *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:             c.ID,
		UserID:         c.UserID,
		Provider:       string(c.Provider),
		ProviderUserID: c.ProviderUserID,
		PasswordHash:   c.PasswordHash,
		CreatedAt:      c.CreatedAt,
	}
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromSessionDomain(s *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		TokenHash: s.TokenHash,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

func toRestaurantDomain(m *model.RestaurantModel) *entity.Restaurant {
	return &entity.Restaurant{
		ID:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		Categories:   splitCategories(m.Category),
		Location:     orb.Point{m.Longitude, m.Latitude},
		Rating:       m.Rating,
		ReviewCount:  m.Reviews,
		ImagePath:    m.ImagePath,
		OpeningHours: m.OpeningHours,
	}
}

// splitCategories turns the dataset's single "a/b" category string into a
// list of labels, dropping empty segments.
func splitCategories(raw string) []string {
	parts := strings.Split(raw, "/")
	categories := make([]string, 0, len(parts))

	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			categories = append(categories, label)
		}
	}

	return categories
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:             m.ID,
		RestaurantID:   m.RestaurantID,
		UserID:         m.UserID,
		Description:    m.Description,
		FoodRating:     m.FoodRating,
		ServiceRating:  m.ServiceRating,
		AmbianceRating: m.AmbianceRating,
		AverageRating:  m.AverageRating,
		Likes:          m.Likes,
		LikedBy:        m.LikedBy,
		PhotoURLs:      m.PhotoURLs,
		VideoURL:       m.VideoURL,
		CreatedAt:      m.CreatedAt,
	}
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:             r.ID,
		RestaurantID:   r.RestaurantID,
		UserID:         r.UserID,
		Description:    r.Description,
		FoodRating:     r.FoodRating,
		ServiceRating:  r.ServiceRating,
		AmbianceRating: r.AmbianceRating,
		AverageRating:  r.AverageRating,
		Likes:          r.Likes,
		LikedBy:        r.LikedBy,
		PhotoURLs:      r.PhotoURLs,
		VideoURL:       r.VideoURL,
		CreatedAt:      r.CreatedAt,
	}
}

func toPlaceListDomain(m *model.PlaceListModel) *entity.PlaceList {
	return &entity.PlaceList{
		ID:            m.ID,
		CreatorID:     m.CreatorID,
		Title:         m.Title,
		Notes:         m.Notes,
		IsPublic:      m.IsPublic,
		RestaurantIDs: m.RestaurantIDs,
		CreatedAt:     m.CreatedAt,
	}
}

func fromPlaceListDomain(p *entity.PlaceList) *model.PlaceListModel {
	return &model.PlaceListModel{
		ID:            p.ID,
		CreatorID:     p.CreatorID,
		Title:         p.Title,
		Notes:         p.Notes,
		IsPublic:      p.IsPublic,
		RestaurantIDs: p.RestaurantIDs,
		CreatedAt:     p.CreatedAt,
	}
}
