package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

type TopicRepository struct {
	db *sql.DB
}

func NewTopicRepository(db *sql.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// EnsureSchema creates the topic tables and the feedback join table.
func (r *TopicRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS topics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	CREATE TABLE IF NOT EXISTS customer_feedback_topic (
		id TEXT PRIMARY KEY,
		customer_feedback_id TEXT NOT NULL,
		topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
		assigned_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE(customer_feedback_id, topic_id)
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure topic schema: %w", err)
	}
	return nil
}

// List returns all topics ordered by name.
func (r *TopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, category FROM topics ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Category); err != nil {
			return nil, fmt.Errorf("scan topic row: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic rows: %w", err)
	}
	return topics, nil
}

func (r *TopicRepository) GetByID(ctx context.Context, id string) (models.Topic, error) {
	var t models.Topic
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, category FROM topics WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Category)
	if err != nil {
		return models.Topic{}, err
	}
	return t, nil
}

func (r *TopicRepository) GetByName(ctx context.Context, name string) (models.Topic, error) {
	var t models.Topic
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, category FROM topics WHERE name = ?", name).
		Scan(&t.ID, &t.Name, &t.Category)
	if err != nil {
		return models.Topic{}, err
	}
	return t, nil
}

func (r *TopicRepository) Create(ctx context.Context, t models.Topic) (models.Topic, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO topics (id, name, category) VALUES (?, ?, ?)",
		t.ID, t.Name, t.Category)
	if err != nil {
		return models.Topic{}, fmt.Errorf("insert topic: %w", err)
	}
	return t, nil
}

func (r *TopicRepository) Update(ctx context.Context, t models.Topic) (models.Topic, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE topics SET name = ?, category = ?, updated_at = datetime('now') WHERE id = ?",
		t.Name, t.Category, t.ID)
	if err != nil {
		return models.Topic{}, fmt.Errorf("update topic: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Topic{}, sql.ErrNoRows
	}
	return t, nil
}

// Delete removes a topic; join rows cascade.
func (r *TopicRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM topics WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetOrCreate finds a topic by name, creating it when absent.
func (r *TopicRepository) GetOrCreate(ctx context.Context, name, category string) (models.Topic, error) {
	t, err := r.GetByName(ctx, name)
	if err == nil {
		return t, nil
	}
	if err != sql.ErrNoRows {
		return models.Topic{}, fmt.Errorf("lookup topic by name: %w", err)
	}
	return r.Create(ctx, models.Topic{Name: name, Category: category})
}

// ListWithStats computes the per-topic statistics the dashboard consumes:
// feedback count, distinct customers, sentiment breakdown and positive
// percentage, ordered by feedback count descending.
func (r *TopicRepository) ListWithStats(ctx context.Context) ([]models.TopicWithStats, error) {
	const query = `
	SELECT
		t.id, t.name, t.category,
		COUNT(cf.id) AS feedback_count,
		COUNT(DISTINCT CASE WHEN cf.account_id != '' THEN cf.account_id END) AS unique_customers,
		SUM(CASE WHEN cf.sentiment = 'Positive' THEN 1 ELSE 0 END) AS positive_count,
		SUM(CASE WHEN cf.sentiment = 'Neutral' THEN 1 ELSE 0 END) AS neutral_count,
		SUM(CASE WHEN cf.sentiment = 'Negative' THEN 1 ELSE 0 END) AS negative_count,
		CASE WHEN COUNT(cf.id) > 0
			THEN ROUND(100.0 * SUM(CASE WHEN cf.sentiment = 'Positive' THEN 1 ELSE 0 END) / COUNT(cf.id), 1)
			ELSE 0
		END AS positive_percentage
	FROM topics AS t
	LEFT JOIN customer_feedback_topic AS cft ON cft.topic_id = t.id
	LEFT JOIN customer_feedbacks AS cf ON cf.id = cft.customer_feedback_id
	GROUP BY t.id, t.name, t.category
	ORDER BY feedback_count DESC, t.name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query topic statistics: %w", err)
	}
	defer rows.Close()

	var results []models.TopicWithStats
	for rows.Next() {
		var s models.TopicWithStats
		var positive, neutral, negative sql.NullInt64
		var pct sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.FeedbackCount,
			&s.UniqueCustomers, &positive, &neutral, &negative, &pct); err != nil {
			return nil, fmt.Errorf("scan topic statistics row: %w", err)
		}
		s.PositiveCount = int(positive.Int64)
		s.NeutralCount = int(neutral.Int64)
		s.NegativeCount = int(negative.Int64)
		s.PositivePercentage = pct.Float64
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic statistics: %w", err)
	}
	return results, nil
}

// TopicsForFeedback returns the topics assigned to one feedback record.
func (r *TopicRepository) TopicsForFeedback(ctx context.Context, feedbackID string) ([]models.Topic, error) {
	const query = `
	SELECT t.id, t.name, t.category
	FROM customer_feedback_topic AS cft
	JOIN topics AS t ON t.id = cft.topic_id
	WHERE cft.customer_feedback_id = ?
	ORDER BY t.name
	`
	rows, err := r.db.QueryContext(ctx, query, feedbackID)
	if err != nil {
		return nil, fmt.Errorf("query topics for feedback: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Category); err != nil {
			return nil, fmt.Errorf("scan feedback topic row: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback topics: %w", err)
	}
	return topics, nil
}

// FeedbacksForTopic returns the ids of records assigned to a topic.
func (r *TopicRepository) FeedbacksForTopic(ctx context.Context, topicID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT customer_feedback_id FROM customer_feedback_topic WHERE topic_id = ?", topicID)
	if err != nil {
		return nil, fmt.Errorf("query feedbacks for topic: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan feedback id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback ids: %w", err)
	}
	return ids, nil
}

// AssignTopics attaches topics to a feedback record, skipping duplicates.
func (r *TopicRepository) AssignTopics(ctx context.Context, feedbackID string, topicIDs []string) error {
	for _, topicID := range topicIDs {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO customer_feedback_topic (id, customer_feedback_id, topic_id)
			VALUES (?, ?, ?)
			ON CONFLICT(customer_feedback_id, topic_id) DO NOTHING`,
			uuid.NewString(), feedbackID, topicID)
		if err != nil {
			return fmt.Errorf("assign topic %s: %w", topicID, err)
		}
	}
	return nil
}

// ReplaceTopics removes all assignments for a record and installs new ones.
func (r *TopicRepository) ReplaceTopics(ctx context.Context, feedbackID string, topicIDs []string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM customer_feedback_topic WHERE customer_feedback_id = ?", feedbackID)
	if err != nil {
		return fmt.Errorf("clear topic assignments: %w", err)
	}
	return r.AssignTopics(ctx, feedbackID, topicIDs)
}

// RemoveTopic detaches one topic from a feedback record.
func (r *TopicRepository) RemoveTopic(ctx context.Context, feedbackID, topicID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM customer_feedback_topic WHERE customer_feedback_id = ? AND topic_id = ?",
		feedbackID, topicID)
	if err != nil {
		return fmt.Errorf("remove topic assignment: %w", err)
	}
	return nil
}
