package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

func negativeOn(date, product, topic string) models.Feedback {
	return models.Feedback{
		Date:       date,
		Product:    product,
		Topic:      topic,
		Sentiment:  models.SentimentNegative,
		TypeOfPost: models.TypeComplaint,
	}
}

// TestPainPointAlerts tests alert synthesis from the 7-day window
func TestPainPointAlerts(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	t.Run("no qualifying records means no alerts", func(t *testing.T) {
		records := []models.Feedback{
			{Date: "2025-03-11", Sentiment: models.SentimentPositive, TypeOfPost: models.TypeCompliment},
		}
		assert.Empty(t, PainPointAlerts(records, now))
	})

	t.Run("product alert above the occurrence floor", func(t *testing.T) {
		records := []models.Feedback{
			negativeOn("2025-03-10", "Galaxy Z Flip", "Technical"),
			negativeOn("2025-03-11", "Galaxy Z Flip", "Pricing"),
			negativeOn("2025-03-12", "Galaxy Z Flip", "Service Center"),
		}
		alerts := PainPointAlerts(records, now)

		assert.Len(t, alerts, 2)
		assert.Equal(t, "Galaxy Z Flip Issues", alerts[0].Title)
		assert.Equal(t, SeverityMedium, alerts[0].Severity)
		assert.Equal(t, IconAlertTriangle, alerts[0].Icon)
		assert.Equal(t, "Customer Feedback Monitoring", alerts[1].Title)
		assert.Equal(t, SeverityLow, alerts[1].Severity)
		assert.Equal(t, IconAlertCircle, alerts[1].Icon)
	})

	t.Run("five occurrences escalate to high", func(t *testing.T) {
		var records []models.Feedback
		for i := 0; i < 5; i++ {
			records = append(records, negativeOn("2025-03-11", "Galaxy S25", "Technical"))
		}
		alerts := PainPointAlerts(records, now)

		assert.Equal(t, "Galaxy S25 Issues", alerts[0].Title)
		assert.Equal(t, SeverityHigh, alerts[0].Severity)
		assert.Equal(t, IconXCircle, alerts[0].Icon)
	})

	t.Run("product info topic is excluded", func(t *testing.T) {
		records := []models.Feedback{
			negativeOn("2025-03-10", "", "Product Info"),
			negativeOn("2025-03-11", "", "Product Info"),
			negativeOn("2025-03-12", "", "Product Info"),
		}
		alerts := PainPointAlerts(records, now)

		assert.Len(t, alerts, 1)
		assert.Equal(t, "Customer Feedback Monitoring", alerts[0].Title)
	})

	t.Run("records older than seven days are ignored", func(t *testing.T) {
		records := []models.Feedback{
			negativeOn("2025-02-01", "Galaxy S25", "Technical"),
			negativeOn("2025-02-02", "Galaxy S25", "Technical"),
			negativeOn("2025-02-03", "Galaxy S25", "Technical"),
		}
		assert.Empty(t, PainPointAlerts(records, now))
	})

	t.Run("capped at three entries", func(t *testing.T) {
		var records []models.Feedback
		for _, product := range []string{"Galaxy S25", "Galaxy Z Flip", "Galaxy A06"} {
			for i := 0; i < 3; i++ {
				records = append(records, negativeOn("2025-03-11", product, "Technical"))
			}
		}
		alerts := PainPointAlerts(records, now)

		assert.Len(t, alerts, 3)
	})

	t.Run("monitoring entry reports the window volume", func(t *testing.T) {
		records := []models.Feedback{
			negativeOn("2025-03-11", "", "Pricing"),
		}
		alerts := PainPointAlerts(records, now)

		assert.Len(t, alerts, 1)
		assert.Contains(t, alerts[0].Description, "1 negative feedback items")
	})
}
