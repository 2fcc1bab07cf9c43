package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// Everything in this file is a pure function over a feedback snapshot:
// no I/O, no shared state, a fresh result on every call.

// Sentiment weights on the 0..10 dashboard scale.
const (
	scorePositive = 10
	scoreNeutral  = 6
	scoreNegative = 2

	// Returned for an empty snapshot instead of NaN.
	scoreEmptyDefault = 5.0

	// Reported when no record has a usable response delta.
	responseTimeFallbackHours = 24.0
)

// DefaultHardwareKeywords force a record into the Hardware Issues bucket
// at high severity regardless of its topic. The corpus is Indonesian but
// these product terms appear verbatim in it; callers with another locale
// supply their own list.
var DefaultHardwareKeywords = []string{"lcd", "screen", "display"}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SentimentScore maps each record's sentiment to a weight and returns the
// arithmetic mean rounded to one decimal. Unknown sentiment counts as
// neutral; an empty snapshot scores the documented neutral default.
func SentimentScore(records []models.Feedback) float64 {
	if len(records) == 0 {
		return scoreEmptyDefault
	}
	sum := 0
	for _, f := range records {
		switch f.Sentiment {
		case models.SentimentPositive:
			sum += scorePositive
		case models.SentimentNegative:
			sum += scoreNegative
		default:
			sum += scoreNeutral
		}
	}
	return round1(float64(sum) / float64(len(records)))
}

var severityRank = map[string]int{
	SeverityHigh:   3,
	SeverityMedium: 2,
	SeverityLow:    1,
}

// classifyPainPoint derives the bucket category and severity for one
// record, or ok=false when the record is not a pain point at all.
// Priority: keyword override, details markers, topic rules, then the
// escalation rule for service/pricing topics.
func classifyPainPoint(f models.Feedback, keywords []string) (category, severity string, ok bool) {
	isComplaint := f.TypeOfPost == models.TypeComplaint
	isNegative := f.Sentiment == models.SentimentNegative
	if !isComplaint && !isNegative {
		return "", "", false
	}

	msg := strings.ToLower(f.PostCopy)
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return "Hardware Issues", SeverityHigh, true
		}
	}
	if strings.Contains(f.Details, "Issue after update") {
		return "Software Issues", SeverityHigh, true
	}

	switch f.Topic {
	case "Technical":
		return "Technical Issues", SeverityHigh, true
	case "Product Release":
		if strings.Contains(f.Details, "Delayed") {
			return "Product Delivery", SeverityHigh, true
		}
		return "Product Delivery", SeverityMedium, true
	case "Product Info":
		return "Product Information", SeverityMedium, true
	}

	if strings.Contains(f.Details, "Availability") {
		return "Product Availability", SeverityMedium, true
	}

	if f.Topic == "Service Center" || f.Topic == "Pricing" {
		factors := 0
		for _, hit := range []bool{isComplaint, isNegative, f.Status == models.StatusPending} {
			if hit {
				factors++
			}
		}
		severity := SeverityLow
		if factors >= 2 {
			severity = SeverityMedium
		}
		if factors == 3 {
			severity = SeverityHigh
		}
		return f.Topic, severity, true
	}

	return "Other", SeverityLow, true
}

// PainPointBuckets partitions the qualifying records (Complaint OR
// Negative) into derived-category buckets. Each qualifying record lands
// in exactly one bucket; a bucket's severity is the highest seen among
// its members and up to three example messages are retained. Buckets are
// ordered by severity descending, ties broken by issue count descending.
func PainPointBuckets(records []models.Feedback, keywords []string) []PainPointBucket {
	byCategory := make(map[string]*PainPointBucket)

	for _, f := range records {
		category, severity, ok := classifyPainPoint(f, keywords)
		if !ok {
			continue
		}
		b, exists := byCategory[category]
		if !exists {
			b = &PainPointBucket{Category: category, Severity: severity}
			byCategory[category] = b
		}
		b.Issues++
		if severityRank[severity] > severityRank[b.Severity] {
			b.Severity = severity
		}
		if len(b.Examples) < 3 && f.PostCopy != "" {
			b.Examples = append(b.Examples, f.PostCopy)
		}
	}

	buckets := make([]PainPointBucket, 0, len(byCategory))
	for _, b := range byCategory {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if severityRank[buckets[i].Severity] != severityRank[buckets[j].Severity] {
			return severityRank[buckets[i].Severity] > severityRank[buckets[j].Severity]
		}
		if buckets[i].Issues != buckets[j].Issues {
			return buckets[i].Issues > buckets[j].Issues
		}
		return buckets[i].Category < buckets[j].Category
	})
	return buckets
}

// CountPainPoints tallies qualifying records by their per-record severity.
func CountPainPoints(records []models.Feedback, keywords []string) PainPointCounts {
	var counts PainPointCounts
	for _, f := range records {
		_, severity, ok := classifyPainPoint(f, keywords)
		if !ok {
			continue
		}
		counts.Total++
		switch severity {
		case SeverityHigh:
			counts.High++
		case SeverityMedium:
			counts.Medium++
		default:
			counts.Low++
		}
	}
	return counts
}

// TopicTrends groups records by topic and ranks the top N by mention
// count. The positivity ratio weighs Neutral records at 0.5.
func TopicTrends(records []models.Feedback, topN int) []TopicTrendEntry {
	type acc struct {
		mentions int
		positive float64
	}
	byTopic := make(map[string]*acc)
	for _, f := range records {
		a, ok := byTopic[f.Topic]
		if !ok {
			a = &acc{}
			byTopic[f.Topic] = a
		}
		a.mentions++
		switch f.Sentiment {
		case models.SentimentPositive:
			a.positive++
		case models.SentimentNeutral:
			a.positive += 0.5
		}
	}

	entries := make([]TopicTrendEntry, 0, len(byTopic))
	for topic, a := range byTopic {
		entries = append(entries, TopicTrendEntry{
			Topic:     topic,
			Mentions:  a.mentions,
			Sentiment: a.positive / float64(a.mentions),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Mentions != entries[j].Mentions {
			return entries[i].Mentions > entries[j].Mentions
		}
		return entries[i].Topic < entries[j].Topic
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// Fixed segment order and palette so a segment keeps its color across
// recomputations.
var segmentDefs = []struct {
	category string
	label    string
	color    string
}{
	{models.CategoryIm, "Instant Messaging", "#8884d8"},
	{models.CategoryGeneral, "General Inquiries", "#82ca9d"},
	{models.CategoryCtv, "CTV Support", "#ffc658"},
	{models.CategoryDa, "Digital Assistant", "#ff7c7c"},
}

// CustomerSegments returns each category's percentage share of the
// snapshot, zero-share segments omitted. Rounding can make the shares sum
// to slightly under 100.
func CustomerSegments(records []models.Feedback) []SegmentShare {
	if len(records) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, f := range records {
		counts[f.Category]++
	}

	var segments []SegmentShare
	for _, def := range segmentDefs {
		value := int(math.Round(float64(counts[def.category]) / float64(len(records)) * 100))
		if value > 0 {
			segments = append(segments, SegmentShare{Segment: def.label, Value: value, Color: def.color})
		}
	}
	return segments
}

// SegmentPerformance reports the percentage of each segment's records
// that reached Clear status.
func SegmentPerformance(records []models.Feedback) []SegmentShare {
	type acc struct{ total, resolved int }
	byCategory := make(map[string]*acc)
	for _, f := range records {
		a, ok := byCategory[f.Category]
		if !ok {
			a = &acc{}
			byCategory[f.Category] = a
		}
		a.total++
		if f.Status == models.StatusClear {
			a.resolved++
		}
	}

	var segments []SegmentShare
	for _, def := range segmentDefs {
		a, ok := byCategory[def.category]
		if !ok || a.total == 0 {
			continue
		}
		value := int(math.Round(float64(a.resolved) / float64(a.total) * 100))
		segments = append(segments, SegmentShare{Segment: def.label, Value: value, Color: def.color})
	}
	return segments
}

func parseOccurrence(f models.Feedback) (time.Time, bool) {
	date := NormalizeDate(f.Date)
	clock := NormalizeTime(f.Time)
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AverageResponseTime computes the mean elapsed hours between a record's
// occurrence and its response date, taken as end of that day since only
// the date is stored. Non-positive or unparseable deltas are discarded;
// with no valid delta at all the fixed fallback is reported.
func AverageResponseTime(records []models.Feedback) float64 {
	var sum float64
	var n int
	for _, f := range records {
		if f.DateResponses == "" {
			continue
		}
		occurred, ok := parseOccurrence(f)
		if !ok {
			continue
		}
		responded, err := time.Parse("2006-01-02 15:04:05", NormalizeDate(f.DateResponses)+" 23:59:59")
		if err != nil {
			continue
		}
		hours := responded.Sub(occurred).Hours()
		if hours <= 0 {
			continue
		}
		sum += hours
		n++
	}
	if n == 0 {
		return responseTimeFallbackHours
	}
	return round1(sum / float64(n))
}

// recentNegativeCount counts negative/complaint records dated within the
// seven days before now.
func recentNegativeCount(records []models.Feedback, now time.Time) int {
	cutoff := now.AddDate(0, 0, -7).Format("2006-01-02")
	count := 0
	for _, f := range records {
		if f.Sentiment != models.SentimentNegative && f.TypeOfPost != models.TypeComplaint {
			continue
		}
		if date := NormalizeDate(f.Date); date != "" && date >= cutoff {
			count++
		}
	}
	return count
}

// CrisisRiskLevel classifies the snapshot from the high-severity pain
// point count and the 7-day rolling negative volume.
func CrisisRiskLevel(records []models.Feedback, keywords []string, now time.Time) string {
	high := CountPainPoints(records, keywords).High
	recent := recentNegativeCount(records, now)
	switch {
	case high > 5 || recent > 10:
		return RiskHigh
	case high > 2 || recent > 5:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Journey computes the four funnel stages.
func Journey(records []models.Feedback) JourneyMetrics {
	m := JourneyMetrics{InitialContact: len(records)}
	for _, f := range records {
		if strings.TrimSpace(f.Reply) != "" {
			m.ResponseProvided++
		}
		if f.Status == models.StatusClear {
			m.IssueResolution++
		}
		if f.Sentiment == models.SentimentPositive {
			m.CustomerSatisfaction++
		}
	}
	return m
}

// SentimentTrend groups the snapshot by day and returns per-day sentiment
// counts, chronological, capped to the most recent 30 days present.
func SentimentTrend(records []models.Feedback) []SentimentTrendPoint {
	type acc struct{ positive, neutral, negative int }
	byDate := make(map[string]*acc)
	for _, f := range records {
		date := NormalizeDate(f.Date)
		if date == "" {
			continue
		}
		a, ok := byDate[date]
		if !ok {
			a = &acc{}
			byDate[date] = a
		}
		switch f.Sentiment {
		case models.SentimentPositive:
			a.positive++
		case models.SentimentNegative:
			a.negative++
		default:
			a.neutral++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > 30 {
		dates = dates[len(dates)-30:]
	}

	points := make([]SentimentTrendPoint, 0, len(dates))
	for _, date := range dates {
		a := byDate[date]
		label := date
		if t, err := time.Parse("2006-01-02", date); err == nil {
			label = t.Format("Jan 2")
		}
		points = append(points, SentimentTrendPoint{
			Date:     label,
			Positive: a.positive,
			Neutral:  a.neutral,
			Negative: a.negative,
		})
	}
	return points
}

// Summarize computes the list-page statistics block.
func Summarize(records []models.Feedback) Stats {
	stats := Stats{
		Total:      len(records),
		ByCategory: make(map[string]int),
		ByTopic:    make(map[string]int),
	}
	for _, f := range records {
		switch f.Sentiment {
		case models.SentimentPositive:
			stats.Positive++
		case models.SentimentNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}
		if f.TypeOfPost == models.TypeComplaint {
			stats.Complaints++
		}
		if f.Status == models.StatusClear {
			stats.Resolved++
		}
		stats.ByCategory[f.Category]++
		stats.ByTopic[f.Topic]++
	}
	return stats
}
