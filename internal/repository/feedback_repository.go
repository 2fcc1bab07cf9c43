package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

const feedbackColumns = `id, link, post_copy, date, time, date_responses, account_id,
	customer_id, category, type_of_post, topic, product, sentiment, source,
	reply, status, details`

// EnsureSchema creates the feedback tables when they do not exist yet.
func (r *FeedbackRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS customer_feedbacks (
		id TEXT PRIMARY KEY,
		link TEXT NOT NULL DEFAULT '',
		post_copy TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		time TEXT NOT NULL DEFAULT '',
		date_responses TEXT NOT NULL DEFAULT '',
		account_id TEXT NOT NULL DEFAULT '',
		customer_id TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT 'General',
		type_of_post TEXT NOT NULL DEFAULT 'Others',
		topic TEXT NOT NULL DEFAULT 'Product Info',
		product TEXT NOT NULL DEFAULT '',
		sentiment TEXT NOT NULL DEFAULT 'Neutral',
		source TEXT NOT NULL DEFAULT 'DM Facebook',
		reply TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		details TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	CREATE INDEX IF NOT EXISTS idx_feedbacks_date ON customer_feedbacks(date);
	CREATE INDEX IF NOT EXISTS idx_feedbacks_sentiment ON customer_feedbacks(sentiment);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure feedback schema: %w", err)
	}
	return nil
}

// buildWhere translates a filter into SQL the same way the in-memory
// evaluator applies it: dimensions ANDed, the search term ORed across the
// text fields, date bounds inclusive. An empty filter yields no WHERE
// clause at all, so the result order matches an unfiltered fetch.
func buildWhere(filter models.Filter) (string, []any) {
	var conds []string
	var args []any

	eq := func(col, val string) {
		if val != "" && val != "all" {
			conds = append(conds, fmt.Sprintf("LOWER(%s) = LOWER(?)", col))
			args = append(args, val)
		}
	}
	eq("sentiment", filter.Sentiment)
	eq("topic", filter.Topic)
	eq("category", filter.Category)
	eq("status", filter.Status)

	if filter.DateFrom != "" {
		conds = append(conds, "date >= ?")
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		conds = append(conds, "date <= ?")
		args = append(args, filter.DateTo)
	}
	if filter.Search != "" {
		conds = append(conds,
			"(post_copy LIKE ? OR account_id LIKE ? OR product LIKE ? OR reply LIKE ? OR details LIKE ?)")
		pattern := "%" + filter.Search + "%"
		for i := 0; i < 5; i++ {
			args = append(args, pattern)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List fetches feedback records matching the filter, newest first.
func (r *FeedbackRepository) List(ctx context.Context, filter models.Filter) ([]models.Feedback, error) {
	where, args := buildWhere(filter)
	query := "SELECT " + feedbackColumns + " FROM customer_feedbacks" + where +
		" ORDER BY date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query feedback list: %w", err)
	}
	defer rows.Close()

	var results []models.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		results = append(results, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback rows: %w", err)
	}
	return results, nil
}

// GetByID fetches a single record. A missing row is reported via
// sql.ErrNoRows for the service layer to classify.
func (r *FeedbackRepository) GetByID(ctx context.Context, id string) (models.Feedback, error) {
	query := "SELECT " + feedbackColumns + " FROM customer_feedbacks WHERE id = ?"
	f, err := scanFeedback(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Feedback{}, err
		}
		return models.Feedback{}, fmt.Errorf("query feedback by id: %w", err)
	}
	return f, nil
}

// Insert stores a new record, generating its identifier when absent.
func (r *FeedbackRepository) Insert(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	const query = `
	INSERT INTO customer_feedbacks
		(id, link, post_copy, date, time, date_responses, account_id, customer_id,
		 category, type_of_post, topic, product, sentiment, source, reply, status, details)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Link, f.PostCopy, f.Date, f.Time, f.DateResponses, f.AccountID,
		f.CustomerID, f.Category, f.TypeOfPost, f.Topic, f.Product, f.Sentiment,
		f.Source, f.Reply, f.Status, f.Details)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}
	return f, nil
}

// Update rewrites an existing record by id.
func (r *FeedbackRepository) Update(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	const query = `
	UPDATE customer_feedbacks SET
		link = ?, post_copy = ?, date = ?, time = ?, date_responses = ?,
		account_id = ?, customer_id = ?, category = ?, type_of_post = ?,
		topic = ?, product = ?, sentiment = ?, source = ?, reply = ?,
		status = ?, details = ?, updated_at = datetime('now')
	WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		f.Link, f.PostCopy, f.Date, f.Time, f.DateResponses, f.AccountID,
		f.CustomerID, f.Category, f.TypeOfPost, f.Topic, f.Product, f.Sentiment,
		f.Source, f.Reply, f.Status, f.Details, f.ID)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("update feedback: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Feedback{}, sql.ErrNoRows
	}
	return f, nil
}

// Delete removes a record by id.
func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customer_feedbacks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count returns the exact number of stored records.
func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customer_feedbacks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count feedbacks: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row rowScanner) (models.Feedback, error) {
	var f models.Feedback
	err := row.Scan(&f.ID, &f.Link, &f.PostCopy, &f.Date, &f.Time,
		&f.DateResponses, &f.AccountID, &f.CustomerID, &f.Category,
		&f.TypeOfPost, &f.Topic, &f.Product, &f.Sentiment, &f.Source,
		&f.Reply, &f.Status, &f.Details)
	return f, err
}
