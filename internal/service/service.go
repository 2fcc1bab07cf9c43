package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

const dbTimeout = 1 * time.Second

var (
	ErrNotFound         = errors.New("feedback not found")
	ErrStorageFailure   = errors.New("storage failure")
	ErrStoreUnavailable = errors.New("persistence store not configured")
)

// FeedbackService is the fallback coordinator. On store error, missing
// configuration, or an empty live result, collection reads degrade to the
// static sample set instead of failing, and the response is tagged so
// callers can tell. Mutations do not fall back.
type FeedbackService struct {
	storage  FeedbackRepository
	logger   *zap.Logger
	keywords []string
	sample   []models.Feedback
	now      func() time.Time
}

// NewFeedbackService creates the service. A nil storage is allowed and
// puts the service in permanent fallback mode (unconfigured store).
func NewFeedbackService(storage FeedbackRepository, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &FeedbackService{
		storage:  storage,
		logger:   logger,
		keywords: DefaultHardwareKeywords,
		sample:   SampleFeedbacks(),
		now:      time.Now,
	}
}

func (s *FeedbackService) configured() bool {
	return s.storage != nil
}

// Fetch returns feedback records matching the filter, live when possible,
// otherwise the filtered sample set with a reason attached. It never
// returns an error past this boundary.
func (s *FeedbackService) Fetch(ctx context.Context, filter models.Filter) Result[[]models.Feedback] {
	if !s.configured() {
		return s.fallback(filter, "persistence store is not configured, using sample data")
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	records, err := s.storage.List(dbCtx, filter)
	if err != nil {
		s.logger.Warn("feedback query failed, switching to sample data", zap.Error(err))
		return s.fallback(filter, fmt.Sprintf("using sample data: %v", err))
	}
	if len(records) == 0 {
		return s.fallback(filter, "no feedback data available, using sample data")
	}
	return Result[[]models.Feedback]{Data: records}
}

func (s *FeedbackService) fallback(filter models.Filter, reason string) Result[[]models.Feedback] {
	return Result[[]models.Feedback]{
		Data:            ApplyFilter(SampleFeedbacks(), filter),
		Error:           reason,
		IsUsingFallback: true,
	}
}

// GetByID fetches one record. A missing row is ErrNotFound; when the
// store is down the sample set is consulted before giving up.
func (s *FeedbackService) GetByID(ctx context.Context, id string) (models.Feedback, error) {
	if !s.configured() {
		return s.sampleByID(id)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	f, err := s.storage.GetByID(dbCtx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrNotFound
		}
		s.logger.Warn("feedback lookup failed, checking sample data",
			zap.String("id", id), zap.Error(err))
		return s.sampleByID(id)
	}
	return f, nil
}

func (s *FeedbackService) sampleByID(id string) (models.Feedback, error) {
	for _, f := range s.sample {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Feedback{}, ErrNotFound
}

// Create normalizes a raw row (snake_case or legacy keys) and stores it.
func (s *FeedbackService) Create(ctx context.Context, row map[string]any) (models.Feedback, error) {
	if !s.configured() {
		return models.Feedback{}, ErrStoreUnavailable
	}
	f := NormalizeRow(row)
	f.ID = ""

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	created, err := s.storage.Insert(dbCtx, f)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return created, nil
}

// Update replaces an existing record with the normalized payload.
func (s *FeedbackService) Update(ctx context.Context, id string, row map[string]any) (models.Feedback, error) {
	if !s.configured() {
		return models.Feedback{}, ErrStoreUnavailable
	}
	f := NormalizeRow(row)
	f.ID = id

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	updated, err := s.storage.Update(dbCtx, f)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrNotFound
		}
		return models.Feedback{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return updated, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	if !s.configured() {
		return ErrStoreUnavailable
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.Delete(dbCtx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return nil
}

// Stats summarizes the full collection.
func (s *FeedbackService) Stats(ctx context.Context) Result[Stats] {
	res := s.Fetch(ctx, models.Filter{})
	return Result[Stats]{
		Data:            Summarize(res.Data),
		Error:           res.Error,
		IsUsingFallback: res.IsUsingFallback,
	}
}

// DashboardMetrics fans the independent aggregations out over one
// snapshot and joins them before returning. The aggregations are pure, so
// no ordering or locking between them matters.
func (s *FeedbackService) DashboardMetrics(ctx context.Context) DashboardMetrics {
	res := s.Fetch(ctx, models.Filter{})
	snapshot := res.Data

	metrics := DashboardMetrics{
		TotalFeedbacks:  int64(len(snapshot)),
		IsUsingFallback: res.IsUsingFallback,
	}
	if res.Error != "" {
		metrics.Errors = []string{res.Error}
	}
	if !res.IsUsingFallback {
		dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
		defer cancel()
		if count, err := s.storage.Count(dbCtx); err == nil {
			metrics.TotalFeedbacks = count
		}
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		metrics.OverallSentimentScore = SentimentScore(snapshot)
		return nil
	})
	g.Go(func() error {
		metrics.ActivePainPoints = CountPainPoints(snapshot, s.keywords)
		return nil
	})
	g.Go(func() error {
		metrics.CrisisRiskLevel = CrisisRiskLevel(snapshot, s.keywords, s.now())
		return nil
	})
	g.Go(func() error {
		metrics.AverageResponseTime = AverageResponseTime(snapshot)
		return nil
	})
	_ = g.Wait()

	return metrics
}

// The chart endpoints below share one shape: fetch with fallback, run the
// pure aggregation, carry the fallback tags through.

func (s *FeedbackService) SentimentTrend(ctx context.Context) Result[[]SentimentTrendPoint] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, SentimentTrend(res.Data))
}

func (s *FeedbackService) CustomerSegments(ctx context.Context) Result[[]SegmentShare] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, CustomerSegments(res.Data))
}

func (s *FeedbackService) SegmentPerformance(ctx context.Context) Result[[]SegmentShare] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, SegmentPerformance(res.Data))
}

func (s *FeedbackService) PainPoints(ctx context.Context) Result[[]PainPointBucket] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, PainPointBuckets(res.Data, s.keywords))
}

func (s *FeedbackService) TopicTrends(ctx context.Context, topN int) Result[[]TopicTrendEntry] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, TopicTrends(res.Data, topN))
}

func (s *FeedbackService) Alerts(ctx context.Context) Result[[]Alert] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, PainPointAlerts(res.Data, s.now()))
}

func (s *FeedbackService) Journey(ctx context.Context) Result[JourneyMetrics] {
	res := s.Fetch(ctx, models.Filter{})
	return carry(res, Journey(res.Data))
}

func carry[T any](src Result[[]models.Feedback], data T) Result[T] {
	return Result[T]{Data: data, Error: src.Error, IsUsingFallback: src.IsUsingFallback}
}
