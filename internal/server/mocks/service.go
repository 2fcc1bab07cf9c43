package mocks

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rakhadjo/feedsight/internal/auth"
	"github.com/rakhadjo/feedsight/internal/repository/models"
	"github.com/rakhadjo/feedsight/internal/service"
)

// MockFeedbackProvider is a mock implementation of the FeedbackProvider
// interface for testing the handler layer. It uses function-based mocking
// for flexibility.
type MockFeedbackProvider struct {
	FetchFunc              func(ctx context.Context, filter models.Filter) service.Result[[]models.Feedback]
	GetByIDFunc            func(ctx context.Context, id string) (models.Feedback, error)
	CreateFunc             func(ctx context.Context, row map[string]any) (models.Feedback, error)
	UpdateFunc             func(ctx context.Context, id string, row map[string]any) (models.Feedback, error)
	DeleteFunc             func(ctx context.Context, id string) error
	StatsFunc              func(ctx context.Context) service.Result[service.Stats]
	DashboardMetricsFunc   func(ctx context.Context) service.DashboardMetrics
	SentimentTrendFunc     func(ctx context.Context) service.Result[[]service.SentimentTrendPoint]
	CustomerSegmentsFunc   func(ctx context.Context) service.Result[[]service.SegmentShare]
	SegmentPerformanceFunc func(ctx context.Context) service.Result[[]service.SegmentShare]
	PainPointsFunc         func(ctx context.Context) service.Result[[]service.PainPointBucket]
	TopicTrendsFunc        func(ctx context.Context, topN int) service.Result[[]service.TopicTrendEntry]
	AlertsFunc             func(ctx context.Context) service.Result[[]service.Alert]
	JourneyFunc            func(ctx context.Context) service.Result[service.JourneyMetrics]
}

func (m *MockFeedbackProvider) Fetch(ctx context.Context, filter models.Filter) service.Result[[]models.Feedback] {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, filter)
	}
	return service.Result[[]models.Feedback]{}
}

func (m *MockFeedbackProvider) GetByID(ctx context.Context, id string) (models.Feedback, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return models.Feedback{}, service.ErrNotFound
}

func (m *MockFeedbackProvider) Create(ctx context.Context, row map[string]any) (models.Feedback, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, row)
	}
	return models.Feedback{}, errors.New("not implemented")
}

func (m *MockFeedbackProvider) Update(ctx context.Context, id string, row map[string]any) (models.Feedback, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, row)
	}
	return models.Feedback{}, errors.New("not implemented")
}

func (m *MockFeedbackProvider) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *MockFeedbackProvider) Stats(ctx context.Context) service.Result[service.Stats] {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return service.Result[service.Stats]{}
}

func (m *MockFeedbackProvider) DashboardMetrics(ctx context.Context) service.DashboardMetrics {
	if m.DashboardMetricsFunc != nil {
		return m.DashboardMetricsFunc(ctx)
	}
	return service.DashboardMetrics{}
}

func (m *MockFeedbackProvider) SentimentTrend(ctx context.Context) service.Result[[]service.SentimentTrendPoint] {
	if m.SentimentTrendFunc != nil {
		return m.SentimentTrendFunc(ctx)
	}
	return service.Result[[]service.SentimentTrendPoint]{}
}

func (m *MockFeedbackProvider) CustomerSegments(ctx context.Context) service.Result[[]service.SegmentShare] {
	if m.CustomerSegmentsFunc != nil {
		return m.CustomerSegmentsFunc(ctx)
	}
	return service.Result[[]service.SegmentShare]{}
}

func (m *MockFeedbackProvider) SegmentPerformance(ctx context.Context) service.Result[[]service.SegmentShare] {
	if m.SegmentPerformanceFunc != nil {
		return m.SegmentPerformanceFunc(ctx)
	}
	return service.Result[[]service.SegmentShare]{}
}

func (m *MockFeedbackProvider) PainPoints(ctx context.Context) service.Result[[]service.PainPointBucket] {
	if m.PainPointsFunc != nil {
		return m.PainPointsFunc(ctx)
	}
	return service.Result[[]service.PainPointBucket]{}
}

func (m *MockFeedbackProvider) TopicTrends(ctx context.Context, topN int) service.Result[[]service.TopicTrendEntry] {
	if m.TopicTrendsFunc != nil {
		return m.TopicTrendsFunc(ctx, topN)
	}
	return service.Result[[]service.TopicTrendEntry]{}
}

func (m *MockFeedbackProvider) Alerts(ctx context.Context) service.Result[[]service.Alert] {
	if m.AlertsFunc != nil {
		return m.AlertsFunc(ctx)
	}
	return service.Result[[]service.Alert]{}
}

func (m *MockFeedbackProvider) Journey(ctx context.Context) service.Result[service.JourneyMetrics] {
	if m.JourneyFunc != nil {
		return m.JourneyFunc(ctx)
	}
	return service.Result[service.JourneyMetrics]{}
}

// MockTopicStore is a function-based mock of the TopicStore interface.
type MockTopicStore struct {
	ListFunc              func(ctx context.Context) ([]models.Topic, error)
	GetByIDFunc           func(ctx context.Context, id string) (models.Topic, error)
	CreateFunc            func(ctx context.Context, t models.Topic) (models.Topic, error)
	UpdateFunc            func(ctx context.Context, t models.Topic) (models.Topic, error)
	DeleteFunc            func(ctx context.Context, id string) error
	GetOrCreateFunc       func(ctx context.Context, name, category string) (models.Topic, error)
	ListWithStatsFunc     func(ctx context.Context) ([]models.TopicWithStats, error)
	TopicsForFeedbackFunc func(ctx context.Context, feedbackID string) ([]models.Topic, error)
	FeedbacksForTopicFunc func(ctx context.Context, topicID string) ([]string, error)
	ReplaceTopicsFunc     func(ctx context.Context, feedbackID string, topicIDs []string) error
	RemoveTopicFunc       func(ctx context.Context, feedbackID, topicID string) error
}

func (m *MockTopicStore) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockTopicStore) GetByID(ctx context.Context, id string) (models.Topic, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return models.Topic{}, sql.ErrNoRows
}

func (m *MockTopicStore) Create(ctx context.Context, t models.Topic) (models.Topic, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t, nil
}

func (m *MockTopicStore) Update(ctx context.Context, t models.Topic) (models.Topic, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return t, nil
}

func (m *MockTopicStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTopicStore) GetOrCreate(ctx context.Context, name, category string) (models.Topic, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, name, category)
	}
	return models.Topic{Name: name, Category: category}, nil
}

func (m *MockTopicStore) ListWithStats(ctx context.Context) ([]models.TopicWithStats, error) {
	if m.ListWithStatsFunc != nil {
		return m.ListWithStatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTopicStore) TopicsForFeedback(ctx context.Context, feedbackID string) ([]models.Topic, error) {
	if m.TopicsForFeedbackFunc != nil {
		return m.TopicsForFeedbackFunc(ctx, feedbackID)
	}
	return nil, nil
}

func (m *MockTopicStore) FeedbacksForTopic(ctx context.Context, topicID string) ([]string, error) {
	if m.FeedbacksForTopicFunc != nil {
		return m.FeedbacksForTopicFunc(ctx, topicID)
	}
	return nil, nil
}

func (m *MockTopicStore) ReplaceTopics(ctx context.Context, feedbackID string, topicIDs []string) error {
	if m.ReplaceTopicsFunc != nil {
		return m.ReplaceTopicsFunc(ctx, feedbackID, topicIDs)
	}
	return nil
}

func (m *MockTopicStore) RemoveTopic(ctx context.Context, feedbackID, topicID string) error {
	if m.RemoveTopicFunc != nil {
		return m.RemoveTopicFunc(ctx, feedbackID, topicID)
	}
	return nil
}

// MockAuthenticator is a function-based mock of the Authenticator interface.
type MockAuthenticator struct {
	SignInFunc     func(ctx context.Context, email, password string) (models.User, auth.Session, error)
	SignUpFunc     func(ctx context.Context, email, password string) (models.User, auth.Session, error)
	ParseTokenFunc func(tokenString string) (string, string, error)
}

func (m *MockAuthenticator) SignIn(ctx context.Context, email, password string) (models.User, auth.Session, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return models.User{}, auth.Session{}, auth.ErrInvalidCredentials
}

func (m *MockAuthenticator) SignUp(ctx context.Context, email, password string) (models.User, auth.Session, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	return models.User{}, auth.Session{}, auth.ErrEmailTaken
}

func (m *MockAuthenticator) ParseToken(tokenString string) (string, string, error) {
	if m.ParseTokenFunc != nil {
		return m.ParseTokenFunc(tokenString)
	}
	return "", "", errors.New("invalid token")
}
