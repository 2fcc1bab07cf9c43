package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakhadjo/feedsight/internal/repository/models"
	"github.com/rakhadjo/feedsight/internal/service"
)

func filterFromQuery(c *gin.Context) models.Filter {
	return models.Filter{
		Sentiment: c.Query("sentiment"),
		Topic:     c.Query("topic"),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
	}
}

func (h *Handlers) ListFeedbacks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	res := h.feedback.Fetch(ctx, filterFromQuery(c))
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) GetFeedback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	f, err := h.feedback.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.writeFeedbackError(c, "get feedback", err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handlers) CreateFeedback(c *gin.Context) {
	var row map[string]any
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	created, err := h.feedback.Create(ctx, row)
	if err != nil {
		h.writeFeedbackError(c, "create feedback", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) UpdateFeedback(c *gin.Context) {
	var row map[string]any
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	updated, err := h.feedback.Update(ctx, c.Param("id"), row)
	if err != nil {
		h.writeFeedbackError(c, "update feedback", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) DeleteFeedback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	if err := h.feedback.Delete(ctx, c.Param("id")); err != nil {
		h.writeFeedbackError(c, "delete feedback", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) GetFeedbackStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultRequestTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.feedback.Stats(ctx))
}

func (h *Handlers) writeFeedbackError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence store not configured"})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
