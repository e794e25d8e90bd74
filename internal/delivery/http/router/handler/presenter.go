package handler

import (
	"time"

	"kuliner/internal/domain/entity"
	"kuliner/internal/usecase"
)

// Response models decouple the JSON surface from the domain entities.

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Handle      string    `json:"handle,omitempty"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u *entity.User) *userResponse {
	if u == nil {
		return nil
	}

	return &userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Handle:      u.Handle,
		ReviewCount: u.ReviewCount,
		CreatedAt:   u.CreatedAt,
	}
}

type restaurantResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Categories     []string `json:"categories"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	ImagePath      string   `json:"imagePath,omitempty"`
	OpeningHours   string   `json:"openingHours,omitempty"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}

func toRestaurantResponse(r *entity.Restaurant) *restaurantResponse {
	if r == nil {
		return nil
	}

	return &restaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		Categories:   r.Categories,
		Latitude:     r.Location.Lat(),
		Longitude:    r.Location.Lon(),
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		ImagePath:    r.ImagePath,
		OpeningHours: r.OpeningHours,
	}
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []*restaurantResponse {
	out := make([]*restaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, toRestaurantResponse(r))
	}

	return out
}

func toNearbyResponses(results []*usecase.RestaurantWithDistance) []*restaurantResponse {
	out := make([]*restaurantResponse, 0, len(results))
	for _, item := range results {
		resp := toRestaurantResponse(item.Restaurant)
		distance := item.DistanceMeters
		resp.DistanceMeters = &distance
		out = append(out, resp)
	}

	return out
}

type reviewResponse struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurantId"`
	UserID         string    `json:"userId"`
	Description    string    `json:"description"`
	FoodRating     float64   `json:"foodRating"`
	ServiceRating  float64   `json:"serviceRating"`
	AmbianceRating float64   `json:"ambianceRating"`
	AverageRating  float64   `json:"averageRating"`
	Likes          int       `json:"likes"`
	PhotoURLs      []string  `json:"photoUrls"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toReviewResponse(r *entity.Review) *reviewResponse {
	if r == nil {
		return nil
	}

	return &reviewResponse{
		ID:             r.ID,
		RestaurantID:   r.RestaurantID,
		UserID:         r.UserID,
		Description:    r.Description,
		FoodRating:     r.FoodRating,
		ServiceRating:  r.ServiceRating,
		AmbianceRating: r.AmbianceRating,
		AverageRating:  r.AverageRating,
		Likes:          r.Likes,
		PhotoURLs:      r.PhotoURLs,
		VideoURL:       r.VideoURL,
		CreatedAt:      r.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*reviewResponse {
	out := make([]*reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return out
}

type placeListResponse struct {
	ID          string                `json:"id"`
	CreatorID   string                `json:"creatorId"`
	Title       string                `json:"title"`
	Notes       string                `json:"notes,omitempty"`
	IsPublic    bool                  `json:"isPublic"`
	Restaurants []*restaurantResponse `json:"restaurants"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func toPlaceListResponse(list *entity.PlaceList, restaurants []*entity.Restaurant) *placeListResponse {
	if list == nil {
		return nil
	}

	return &placeListResponse{
		ID:          list.ID,
		CreatorID:   list.CreatorID,
		Title:       list.Title,
		Notes:       list.Notes,
		IsPublic:    list.IsPublic,
		Restaurants: toRestaurantResponses(restaurants),
		CreatedAt:   list.CreatedAt,
	}
}

type authResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *userResponse `json:"user"`
}

func toAuthResponse(out *usecase.LoginOutput) *authResponse {
	return &authResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         toUserResponse(out.User),
	}
}
