package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

type topicPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// topicAssignments carries the desired topic set for one feedback record.
// Names are resolved get-or-create so a client can tag with a topic that
// does not exist yet.
type topicAssignments struct {
	TopicIDs   []string `json:"topicIds"`
	TopicNames []string `json:"topicNames"`
}

// topicsReady reports whether the topic store is wired; without a
// configured database there is no sample fallback for topics.
func (h *Handlers) topicsReady(c *gin.Context) bool {
	if h.topics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence store not configured"})
		return false
	}
	return true
}

func (h *Handlers) ListTopics(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	topics, err := h.topics.List(ctx)
	if err != nil {
		h.writeTopicError(c, "list topics", err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *Handlers) GetTopic(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	topic, err := h.topics.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.writeTopicError(c, "get topic", err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *Handlers) CreateTopic(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	var payload topicPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic name is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	topic, err := h.topics.Create(ctx, models.Topic{
		Name:     strings.TrimSpace(payload.Name),
		Category: payload.Category,
	})
	if err != nil {
		h.writeTopicError(c, "create topic", err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (h *Handlers) UpdateTopic(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	var payload topicPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic name is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	topic, err := h.topics.Update(ctx, models.Topic{
		ID:       c.Param("id"),
		Name:     strings.TrimSpace(payload.Name),
		Category: payload.Category,
	})
	if err != nil {
		h.writeTopicError(c, "update topic", err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *Handlers) DeleteTopic(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	if err := h.topics.Delete(ctx, c.Param("id")); err != nil {
		h.writeTopicError(c, "delete topic", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) GetTopicStats(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	stats, err := h.topics.ListWithStats(ctx)
	if err != nil {
		h.writeTopicError(c, "topic stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) GetTopicFeedbacks(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	ids, err := h.topics.FeedbacksForTopic(ctx, c.Param("id"))
	if err != nil {
		h.writeTopicError(c, "topic feedbacks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedbackIds": ids})
}

func (h *Handlers) GetFeedbackTopics(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	topics, err := h.topics.TopicsForFeedback(ctx, c.Param("id"))
	if err != nil {
		h.writeTopicError(c, "feedback topics", err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// SetFeedbackTopics replaces the full topic assignment of one feedback.
func (h *Handlers) SetFeedbackTopics(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	var payload topicAssignments
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	topicIDs := payload.TopicIDs
	for _, name := range payload.TopicNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		topic, err := h.topics.GetOrCreate(ctx, name, "")
		if err != nil {
			h.writeTopicError(c, "resolve topic name", err)
			return
		}
		topicIDs = append(topicIDs, topic.ID)
	}

	if err := h.topics.ReplaceTopics(ctx, c.Param("id"), topicIDs); err != nil {
		h.writeTopicError(c, "replace feedback topics", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFeedbackTopic detaches a single topic from a feedback record,
// leaving the rest of its assignments alone.
func (h *Handlers) RemoveFeedbackTopic(c *gin.Context) {
	if !h.topicsReady(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	if err := h.topics.RemoveTopic(ctx, c.Param("id"), c.Param("topicId")); err != nil {
		h.writeTopicError(c, "remove feedback topic", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) writeTopicError(c *gin.Context, op string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}
	h.logger.Error(op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
