package mocks

import (
	"context"
	"database/sql"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// MockFeedbackRepository is a mock implementation of the FeedbackRepository
// interface for testing the service layer. It uses function-based mocking
// for flexibility.
type MockFeedbackRepository struct {
	ListFunc    func(ctx context.Context, filter models.Filter) ([]models.Feedback, error)
	GetByIDFunc func(ctx context.Context, id string) (models.Feedback, error)
	InsertFunc  func(ctx context.Context, f models.Feedback) (models.Feedback, error)
	UpdateFunc  func(ctx context.Context, f models.Feedback) (models.Feedback, error)
	DeleteFunc  func(ctx context.Context, id string) error
	CountFunc   func(ctx context.Context) (int64, error)
}

func (m *MockFeedbackRepository) List(ctx context.Context, filter models.Filter) ([]models.Feedback, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockFeedbackRepository) GetByID(ctx context.Context, id string) (models.Feedback, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return models.Feedback{}, sql.ErrNoRows
}

func (m *MockFeedbackRepository) Insert(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, f)
	}
	return f, nil
}

func (m *MockFeedbackRepository) Update(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return f, nil
}

func (m *MockFeedbackRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFeedbackRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
