package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/rakhadjo/feedsight/internal/service"
)

const (
	defaultCacheDuration  = 10 * time.Minute
	defaultRequestTimeout = 10 * time.Second
	defaultTopicTrendTopN = 5
)

type CacheKeyType string

const (
	cacheKeyMetrics        CacheKeyType = "dashboard:metrics"
	cacheKeySentimentTrend CacheKeyType = "dashboard:sentiment_trend"
	cacheKeySegments       CacheKeyType = "dashboard:customer_segments"
	cacheKeySegmentPerf    CacheKeyType = "dashboard:segment_performance"
	cacheKeyPainPoints     CacheKeyType = "dashboard:pain_points"
	cacheKeyTopicTrends    CacheKeyType = "dashboard:topic_trends"
	cacheKeyAlerts         CacheKeyType = "dashboard:alerts"
	cacheKeyJourney        CacheKeyType = "dashboard:journey"
)

// Handlers serves the feedback, topic and dashboard routes. Dashboard
// aggregates are read-through cached; fallback-tagged results flow to the
// client unchanged so it can render the sample-data notice.
type Handlers struct {
	feedback FeedbackProvider
	topics   TopicStore
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

func NewHandlers(feedback FeedbackProvider, topics TopicStore, cache Cacher, logger *zap.Logger, ttl time.Duration) *Handlers {
	if feedback == nil {
		panic("nil FeedbackProvider provided to NewHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &Handlers{
		feedback: feedback,
		topics:   topics,
		cache:    cache,
		logger:   logger.Named("http-handler"),
		cacheTTL: ttl,
	}
}

// cachedJSON runs one dashboard aggregation through the cache and writes
// the result. Aggregations absorb store failures into the fallback
// envelope, so the only errors left here are cache plumbing ones.
func cachedJSON[T any](h *Handlers, c *gin.Context, key CacheKeyType, fn FetchFunc[T]) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	value, err := FindAndCache(ctx, h.cache, &h.sfGroup, string(key), h.cacheTTL, h.logger, fn)
	if err != nil {
		h.logger.Error("dashboard aggregation failed", zap.String("key", string(key)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, value)
}

func (h *Handlers) GetDashboardMetrics(c *gin.Context) {
	cachedJSON(h, c, cacheKeyMetrics, func(ctx context.Context) (service.DashboardMetrics, error) {
		return h.feedback.DashboardMetrics(ctx), nil
	})
}

func (h *Handlers) GetSentimentTrend(c *gin.Context) {
	cachedJSON(h, c, cacheKeySentimentTrend, func(ctx context.Context) (service.Result[[]service.SentimentTrendPoint], error) {
		return h.feedback.SentimentTrend(ctx), nil
	})
}

func (h *Handlers) GetCustomerSegments(c *gin.Context) {
	cachedJSON(h, c, cacheKeySegments, func(ctx context.Context) (service.Result[[]service.SegmentShare], error) {
		return h.feedback.CustomerSegments(ctx), nil
	})
}

func (h *Handlers) GetSegmentPerformance(c *gin.Context) {
	cachedJSON(h, c, cacheKeySegmentPerf, func(ctx context.Context) (service.Result[[]service.SegmentShare], error) {
		return h.feedback.SegmentPerformance(ctx), nil
	})
}

func (h *Handlers) GetPainPoints(c *gin.Context) {
	cachedJSON(h, c, cacheKeyPainPoints, func(ctx context.Context) (service.Result[[]service.PainPointBucket], error) {
		return h.feedback.PainPoints(ctx), nil
	})
}

func (h *Handlers) GetTopicTrends(c *gin.Context) {
	cachedJSON(h, c, cacheKeyTopicTrends, func(ctx context.Context) (service.Result[[]service.TopicTrendEntry], error) {
		return h.feedback.TopicTrends(ctx, defaultTopicTrendTopN), nil
	})
}

func (h *Handlers) GetAlerts(c *gin.Context) {
	cachedJSON(h, c, cacheKeyAlerts, func(ctx context.Context) (service.Result[[]service.Alert], error) {
		return h.feedback.Alerts(ctx), nil
	})
}

func (h *Handlers) GetJourney(c *gin.Context) {
	cachedJSON(h, c, cacheKeyJourney, func(ctx context.Context) (service.Result[service.JourneyMetrics], error) {
		return h.feedback.Journey(ctx), nil
	})
}
