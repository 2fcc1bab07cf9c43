package service

import (
	"context"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// FeedbackRepository defines the persistence operations the service
// consumes; internal/repository provides the SQL implementation.
type FeedbackRepository interface {
	List(ctx context.Context, filter models.Filter) ([]models.Feedback, error)
	GetByID(ctx context.Context, id string) (models.Feedback, error)
	Insert(ctx context.Context, f models.Feedback) (models.Feedback, error)
	Update(ctx context.Context, f models.Feedback) (models.Feedback, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
