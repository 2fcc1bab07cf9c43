package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

const (
	alertMinOccurrences  = 3
	alertHighOccurrences = 5
	maxAlerts            = 3

	// Topic excluded from topic-level alerts; it is the catch-all
	// general-information bucket, not an actionable concern.
	alertExcludedTopic = "Product Info"
)

// PainPointAlerts derives dashboard alert entries from the last seven
// days of negative/complaint feedback. One alert per product and per
// topic with enough occurrences, high severity at five or more, and a
// trailing generic monitoring entry whenever any qualifying records
// exist. High-severity alerts come first by construction order; the
// result is capped at three entries.
func PainPointAlerts(records []models.Feedback, now time.Time) []Alert {
	cutoff := now.AddDate(0, 0, -7).Format("2006-01-02")

	var recent []models.Feedback
	for _, f := range records {
		if f.Sentiment != models.SentimentNegative && f.TypeOfPost != models.TypeComplaint {
			continue
		}
		if date := NormalizeDate(f.Date); date != "" && date >= cutoff {
			recent = append(recent, f)
		}
	}
	if len(recent) == 0 {
		return nil
	}

	productIssues := make(map[string]int)
	topicIssues := make(map[string]int)
	for _, f := range recent {
		if f.Product != "" {
			productIssues[f.Product]++
		}
		topicIssues[f.Topic]++
	}

	var alerts []Alert
	for _, product := range sortedKeys(productIssues) {
		count := productIssues[product]
		if count < alertMinOccurrences {
			continue
		}
		alerts = append(alerts, Alert{
			Title:       product + " Issues",
			Description: "Multiple reports of issues with " + product,
			Source:      "From customer feedback",
			Severity:    thresholdSeverity(count),
			Icon:        thresholdIcon(count),
		})
	}
	for _, topic := range sortedKeys(topicIssues) {
		count := topicIssues[topic]
		if count < alertMinOccurrences || topic == alertExcludedTopic {
			continue
		}
		alerts = append(alerts, Alert{
			Title:       topic + " Concerns",
			Description: "Increased " + strings.ToLower(topic) + " related issues",
			Source:      "Multiple customer complaints",
			Severity:    thresholdSeverity(count),
			Icon:        thresholdIcon(count),
		})
	}

	alerts = append(alerts, Alert{
		Title:       "Customer Feedback Monitoring",
		Description: fmt.Sprintf("%d negative feedback items in the last 7 days", len(recent)),
		Source:      "Ongoing monitoring",
		Severity:    SeverityLow,
		Icon:        IconAlertCircle,
	})

	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}

func thresholdSeverity(count int) string {
	if count >= alertHighOccurrences {
		return SeverityHigh
	}
	return SeverityMedium
}

func thresholdIcon(count int) string {
	if count >= alertHighOccurrences {
		return IconXCircle
	}
	return IconAlertTriangle
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
