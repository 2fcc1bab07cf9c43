package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Register mounts all API routes. Reads are open; mutating feedback and
// topic routes sit behind a Bearer token check.
func Register(engine *gin.Engine, h *Handlers, a *AuthHandlers) {
	api := engine.Group("/api")

	api.POST("/login", a.Login)
	api.GET("/login", a.LoginDocs)
	api.POST("/register", a.Register)
	api.GET("/register", a.RegisterDocs)

	api.GET("/feedbacks", h.ListFeedbacks)
	api.GET("/feedbacks/stats", h.GetFeedbackStats)
	api.GET("/feedbacks/:id", h.GetFeedback)
	api.GET("/feedbacks/:id/topics", h.GetFeedbackTopics)

	api.GET("/topics", h.ListTopics)
	api.GET("/topics/stats", h.GetTopicStats)
	api.GET("/topics/:id", h.GetTopic)
	api.GET("/topics/:id/feedbacks", h.GetTopicFeedbacks)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/metrics", h.GetDashboardMetrics)
	dashboard.GET("/sentiment-trend", h.GetSentimentTrend)
	dashboard.GET("/segments", h.GetCustomerSegments)
	dashboard.GET("/segment-performance", h.GetSegmentPerformance)
	dashboard.GET("/pain-points", h.GetPainPoints)
	dashboard.GET("/topic-trends", h.GetTopicTrends)
	dashboard.GET("/alerts", h.GetAlerts)
	dashboard.GET("/journey", h.GetJourney)

	protected := api.Group("", RequireAuth(a.auth))
	protected.POST("/feedbacks", h.CreateFeedback)
	protected.PUT("/feedbacks/:id", h.UpdateFeedback)
	protected.DELETE("/feedbacks/:id", h.DeleteFeedback)
	protected.PUT("/feedbacks/:id/topics", h.SetFeedbackTopics)
	protected.DELETE("/feedbacks/:id/topics/:topicId", h.RemoveFeedbackTopic)
	protected.POST("/topics", h.CreateTopic)
	protected.PUT("/topics/:id", h.UpdateTopic)
	protected.DELETE("/topics/:id", h.DeleteTopic)
}

// RequireAuth validates the Authorization header and stashes the account
// identity in the request context.
func RequireAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		userID, email, err := a.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Next()
	}
}
