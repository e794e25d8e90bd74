package service

import (
	"context"
)

// Review event types published to the message queue.
const (
	ReviewEventCreated = "review.created"
	ReviewEventLiked   = "review.liked"
)

// ReviewEvent represents a review lifecycle event for async consumers
// (feeds, aggregate-rating pipelines, analytics).
type ReviewEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	Type         string  `json:"type"`
	ReviewID     string  `json:"review_id"`
	RestaurantID string  `json:"restaurant_id"`
	UserID       string  `json:"user_id"`
	Rating       float64 `json:"rating,omitempty"` // Average rating, for created events
	Likes        int     `json:"likes,omitempty"`  // Like count, for liked events
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent publishes a review event for async processing
	PublishReviewEvent(ctx context.Context, event *ReviewEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
