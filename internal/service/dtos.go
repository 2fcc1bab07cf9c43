package service

// Severity levels for pain points and alerts, ordered high > medium > low.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Crisis risk classification.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Alert icon kinds, named after the glyphs the dashboard renders.
const (
	IconXCircle       = "XCircle"
	IconAlertTriangle = "AlertTriangle"
	IconAlertCircle   = "AlertCircle"
)

// PainPointCounts summarizes qualifying records by per-record severity.
type PainPointCounts struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// PainPointBucket is one derived cluster of negative/complaint feedback.
type PainPointBucket struct {
	Category string   `json:"category"`
	Issues   int      `json:"issues"`
	Severity string   `json:"severity"`
	Examples []string `json:"examples,omitempty"`
}

// TopicTrendEntry carries mention volume and a 0..1 positivity ratio.
type TopicTrendEntry struct {
	Topic     string  `json:"topic"`
	Mentions  int     `json:"mentions"`
	Sentiment float64 `json:"sentiment"`
}

// SegmentShare is one slice of the customer segment distribution.
type SegmentShare struct {
	Segment string `json:"segment"`
	Value   int    `json:"value"`
	Color   string `json:"color"`
}

// SentimentTrendPoint is one day of sentiment counts.
type SentimentTrendPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// JourneyMetrics is the four-stage funnel. Each count is taken over the
// whole snapshot, so no stage can exceed InitialContact.
type JourneyMetrics struct {
	InitialContact       int `json:"initialContact"`
	ResponseProvided     int `json:"responseProvided"`
	IssueResolution      int `json:"issueResolution"`
	CustomerSatisfaction int `json:"customerSatisfaction"`
}

// Alert is one synthesized dashboard alert entry.
type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Severity    string `json:"severity"`
	Icon        string `json:"icon"`
}

// Stats is the summary block for the feedback list page.
type Stats struct {
	Total      int            `json:"total"`
	Positive   int            `json:"positive"`
	Negative   int            `json:"negative"`
	Neutral    int            `json:"neutral"`
	Complaints int            `json:"complaints"`
	Resolved   int            `json:"resolved"`
	ByCategory map[string]int `json:"byCategory"`
	ByTopic    map[string]int `json:"byTopic"`
}

// DashboardMetrics is the top-of-page metric block, assembled by fanning
// out the independent aggregations over one snapshot.
type DashboardMetrics struct {
	OverallSentimentScore float64         `json:"overallSentimentScore"`
	ActivePainPoints      PainPointCounts `json:"activePainPoints"`
	CrisisRiskLevel       string          `json:"crisisRiskLevel"`
	AverageResponseTime   float64         `json:"averageResponseTime"`
	TotalFeedbacks        int64           `json:"totalFeedbacks"`
	IsUsingFallback       bool            `json:"isUsingFallback,omitempty"`
	Errors                []string        `json:"errors,omitempty"`
}

// Result is the tri-state envelope every fallback-capable read returns.
// Data is always populated; Error carries the human-readable reason when
// the live store could not serve the call.
type Result[T any] struct {
	Data            T      `json:"data"`
	Error           string `json:"error,omitempty"`
	IsUsingFallback bool   `json:"isUsingFallback"`
}
