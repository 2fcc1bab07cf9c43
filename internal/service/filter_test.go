package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// TestApplyFilter tests the in-memory filter semantics
func TestApplyFilter(t *testing.T) {
	records := SampleFeedbacks()

	t.Run("zero filter returns input unchanged", func(t *testing.T) {
		assert.Equal(t, records, ApplyFilter(records, models.Filter{}))
	})

	t.Run("all values mean unconstrained", func(t *testing.T) {
		filter := models.Filter{Sentiment: "all", Topic: "all", Category: "all", Status: "all"}
		assert.Equal(t, records, ApplyFilter(records, filter))
	})

	t.Run("dimension match is case-insensitive", func(t *testing.T) {
		out := ApplyFilter(records, models.Filter{Sentiment: "negative"})
		assert.NotEmpty(t, out)
		for _, f := range out {
			assert.Equal(t, models.SentimentNegative, f.Sentiment)
		}
	})

	t.Run("dimensions are ANDed", func(t *testing.T) {
		out := ApplyFilter(records, models.Filter{
			Sentiment: models.SentimentNegative,
			Topic:     "Technical",
		})
		for _, f := range out {
			assert.Equal(t, models.SentimentNegative, f.Sentiment)
			assert.Equal(t, "Technical", f.Topic)
		}
	})

	t.Run("search spans the text fields", func(t *testing.T) {
		out := ApplyFilter(records, models.Filter{Search: "lcd"})
		assert.Len(t, out, 1)
		assert.Equal(t, "40", out[0].ID)

		// Matches AccountID too.
		out = ApplyFilter(records, models.Filter{Search: "rika"})
		assert.Len(t, out, 1)
		assert.Equal(t, "42", out[0].ID)
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		out := ApplyFilter(records, models.Filter{DateFrom: "2025-03-05", DateTo: "2025-03-05"})
		for _, f := range out {
			assert.Equal(t, "2025-03-05", f.Date)
		}
		assert.NotEmpty(t, out)
	})

	t.Run("output preserves input order", func(t *testing.T) {
		out := ApplyFilter(records, models.Filter{Category: models.CategoryIm})
		lastIndex := -1
		for _, f := range out {
			idx := -1
			for i, r := range records {
				if r.ID == f.ID {
					idx = i
					break
				}
			}
			assert.Greater(t, idx, lastIndex)
			lastIndex = idx
		}
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		out := ApplyFilter(records, models.Filter{Topic: "Nonexistent"})
		assert.Empty(t, out)
	})
}
