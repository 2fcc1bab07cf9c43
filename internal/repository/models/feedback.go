package models

// Closed enumerations for the classification fields. The values match what
// the persistence store holds, so they are plain strings rather than iota
// constants.
const (
	CategoryIm      = "Im"
	CategoryGeneral = "General"
	CategoryCtv     = "Ctv"
	CategoryDa      = "Da"

	TypeQueries    = "Queries"
	TypeComplaint  = "Complaint"
	TypeCompliment = "Compliment"
	TypeOthers     = "Others"

	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"

	SourceDMFacebook      = "DM Facebook"
	SourceCommentFacebook = "Comment Facebook"

	StatusClear   = "Clear"
	StatusPending = "Pending"
)

// Feedback is one customer interaction in canonical form. Date is always
// ISO (2006-01-02) and Time is 24h HH:MM once a record has passed through
// the normalizer or the repository.
type Feedback struct {
	ID            string `json:"id"`
	Link          string `json:"link"`
	PostCopy      string `json:"postCopy"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	DateResponses string `json:"dateResponses"`
	AccountID     string `json:"accountId"`
	CustomerID    string `json:"customerId"`
	Category      string `json:"category"`
	TypeOfPost    string `json:"typeOfPost"`
	Topic         string `json:"topic"`
	Product       string `json:"product"`
	Sentiment     string `json:"sentiment"`
	Source        string `json:"source"`
	Reply         string `json:"reply"`
	Status        string `json:"status"`
	Details       string `json:"details"`
}

// Filter is a declarative query over feedback records. The zero value (or
// the sentinel "all" on any dimension) matches everything and must return
// the collection unchanged.
type Filter struct {
	Sentiment string
	Topic     string
	Category  string
	Status    string
	Search    string
	DateFrom  string
	DateTo    string
}

// IsZero reports whether no dimension constrains the result.
func (f Filter) IsZero() bool {
	return !active(f.Sentiment) && !active(f.Topic) && !active(f.Category) &&
		!active(f.Status) && f.Search == "" && f.DateFrom == "" && f.DateTo == ""
}

func active(v string) bool {
	return v != "" && v != "all"
}

// Topic is a named classification bucket feedback can be associated with
// through the customer_feedback_topic join table.
type Topic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// TopicWithStats carries per-topic aggregates computed by the statistics
// query. Nothing here is stored; it is derived on every call.
type TopicWithStats struct {
	Topic
	FeedbackCount      int     `json:"feedback_count"`
	UniqueCustomers    int     `json:"unique_customers"`
	PositiveCount      int     `json:"positive_count"`
	NeutralCount       int     `json:"neutral_count"`
	NegativeCount      int     `json:"negative_count"`
	PositivePercentage float64 `json:"positive_percentage"`
}

// FeedbackTopic is one row of the many-to-many join table.
type FeedbackTopic struct {
	ID         string `json:"id"`
	FeedbackID string `json:"customer_feedback_id"`
	TopicID    string `json:"topic_id"`
}

// User is an account in the auth collaborator's users table.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	PasswordHash     string `json:"-"`
	EmailConfirmedAt string `json:"email_confirmed_at,omitempty"`
}
