package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// TestNormalizeRow tests key mapping and defaults
func TestNormalizeRow(t *testing.T) {
	t.Run("legacy capitalized keys", func(t *testing.T) {
		row := map[string]any{
			"Post Copy":    "layar bergaris",
			"Date":         "5-Mar-2025",
			"Time":         "12;59",
			"Account ID":   "Arjuna",
			"Type of post": "Complaint",
			"Sentiment":    "Negative",
			"Category":     "Im",
			"Topic":        "Technical",
			"Status":       "Pending",
		}
		f := NormalizeRow(row)

		assert.Equal(t, "layar bergaris", f.PostCopy)
		assert.Equal(t, "2025-03-05", f.Date)
		assert.Equal(t, "12:59", f.Time)
		assert.Equal(t, "Arjuna", f.AccountID)
		assert.Equal(t, models.TypeComplaint, f.TypeOfPost)
		assert.Equal(t, models.SentimentNegative, f.Sentiment)
	})

	t.Run("snake case keys", func(t *testing.T) {
		row := map[string]any{
			"post_copy": "halo",
			"date":      "2025-03-05",
			"sentiment": "Positive",
		}
		f := NormalizeRow(row)

		assert.Equal(t, "halo", f.PostCopy)
		assert.Equal(t, "2025-03-05", f.Date)
		assert.Equal(t, models.SentimentPositive, f.Sentiment)
	})

	t.Run("defaults for missing fields", func(t *testing.T) {
		f := NormalizeRow(map[string]any{})

		assert.Equal(t, models.CategoryGeneral, f.Category)
		assert.Equal(t, models.TypeOthers, f.TypeOfPost)
		assert.Equal(t, "Product Info", f.Topic)
		assert.Equal(t, models.SentimentNeutral, f.Sentiment)
		assert.Equal(t, models.SourceDMFacebook, f.Source)
		assert.Equal(t, models.StatusPending, f.Status)
	})

	t.Run("numeric id coerced to string", func(t *testing.T) {
		f := NormalizeRow(map[string]any{"id": float64(42)})
		assert.Equal(t, "42", f.ID)
	})

	t.Run("idempotent", func(t *testing.T) {
		row := map[string]any{
			"Post Copy": "Pre order belum dikirim",
			"Date":      "2-Mar-2025",
			"Time":      "16;48",
			"Sentiment": "Negative",
		}
		once := NormalizeRow(row)
		twice := NormalizeRow(map[string]any{
			"post_copy": once.PostCopy,
			"date":      once.Date,
			"time":      once.Time,
			"sentiment": once.Sentiment,
			"category":  once.Category,
		})

		assert.Equal(t, once.PostCopy, twice.PostCopy)
		assert.Equal(t, once.Date, twice.Date)
		assert.Equal(t, once.Time, twice.Time)
		assert.Equal(t, once.Sentiment, twice.Sentiment)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		f := NormalizeRow(map[string]any{"bogus": "value", "post_copy": "ok"})
		assert.Equal(t, "ok", f.PostCopy)
	})
}

// TestNormalizeDate tests date canonicalization
func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2025-03-05":  "2025-03-05",
		"5-Mar-2025":  "2025-03-05",
		"05-Mar-2025": "2025-03-05",
		"2 Mar 2025":  "2025-03-02",
		"":            "",
		"garbage":     "garbage",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeDate(input), "input %q", input)
	}
}

// TestNormalizeTime tests the semicolon fix and padding
func TestNormalizeTime(t *testing.T) {
	cases := map[string]string{
		"12:59":    "12:59",
		"12;59":    "12:59",
		"23:28:30": "23:28",
		"9:05":     "09:05",
		"":         "",
		"noon":     "noon",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeTime(input), "input %q", input)
	}
}
