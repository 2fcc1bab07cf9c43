package server

import (
	"context"
	"time"

	"github.com/rakhadjo/feedsight/internal/auth"
	"github.com/rakhadjo/feedsight/internal/repository/models"
	"github.com/rakhadjo/feedsight/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// FeedbackProvider is the feedback surface the handlers consume. Reads
// return fallback-tagged results and never fail; mutations return typed
// errors.
type FeedbackProvider interface {
	Fetch(ctx context.Context, filter models.Filter) service.Result[[]models.Feedback]
	GetByID(ctx context.Context, id string) (models.Feedback, error)
	Create(ctx context.Context, row map[string]any) (models.Feedback, error)
	Update(ctx context.Context, id string, row map[string]any) (models.Feedback, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) service.Result[service.Stats]

	DashboardMetrics(ctx context.Context) service.DashboardMetrics
	SentimentTrend(ctx context.Context) service.Result[[]service.SentimentTrendPoint]
	CustomerSegments(ctx context.Context) service.Result[[]service.SegmentShare]
	SegmentPerformance(ctx context.Context) service.Result[[]service.SegmentShare]
	PainPoints(ctx context.Context) service.Result[[]service.PainPointBucket]
	TopicTrends(ctx context.Context, topN int) service.Result[[]service.TopicTrendEntry]
	Alerts(ctx context.Context) service.Result[[]service.Alert]
	Journey(ctx context.Context) service.Result[service.JourneyMetrics]
}

// TopicStore is the topic persistence surface the handlers consume.
type TopicStore interface {
	List(ctx context.Context) ([]models.Topic, error)
	GetByID(ctx context.Context, id string) (models.Topic, error)
	Create(ctx context.Context, t models.Topic) (models.Topic, error)
	Update(ctx context.Context, t models.Topic) (models.Topic, error)
	Delete(ctx context.Context, id string) error
	GetOrCreate(ctx context.Context, name, category string) (models.Topic, error)
	ListWithStats(ctx context.Context) ([]models.TopicWithStats, error)
	TopicsForFeedback(ctx context.Context, feedbackID string) ([]models.Topic, error)
	FeedbacksForTopic(ctx context.Context, topicID string) ([]string, error)
	ReplaceTopics(ctx context.Context, feedbackID string, topicIDs []string) error
	RemoveTopic(ctx context.Context, feedbackID, topicID string) error
}

// Authenticator signs accounts in and up and validates session tokens.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (models.User, auth.Session, error)
	SignUp(ctx context.Context, email, password string) (models.User, auth.Session, error)
	ParseToken(tokenString string) (string, string, error)
}
