package repository_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhadjo/feedsight/internal/repository"
	"github.com/rakhadjo/feedsight/internal/repository/models"
	dbbuilder "github.com/rakhadjo/feedsight/pkg/database"
)

// setupTestDB builds the pool the same way the application does, so the
// tests run against the shipped connection settings. A single connection
// keeps the in-memory database alive across queries.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func setupFeedbackRepo(t *testing.T) *repository.FeedbackRepository {
	t.Helper()

	repo := repository.NewFeedbackRepository(setupTestDB(t))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func seedFeedbacks(t *testing.T, repo *repository.FeedbackRepository) []models.Feedback {
	t.Helper()

	seeds := []models.Feedback{
		{
			ID: "1", PostCopy: "Blackberry 06 msh ada kk", Date: "2025-03-05", Time: "12:59",
			AccountID: "Arjuna", Category: models.CategoryIm, TypeOfPost: models.TypeQueries,
			Topic: "Product Info", Product: "Galaxy A06", Sentiment: models.SentimentNeutral,
			Source: models.SourceDMFacebook, Status: models.StatusClear, Details: "Availability",
		},
		{
			ID: "2", PostCopy: "lcd nya ga tahan lama", Date: "2025-03-12", Time: "12:07",
			AccountID: "Ther", Category: models.CategoryIm, TypeOfPost: models.TypeComplaint,
			Topic: "Technical", Product: "Galaxy Z Flip", Sentiment: models.SentimentNegative,
			Source: models.SourceDMFacebook, Status: models.StatusClear,
		},
		{
			ID: "3", PostCopy: "camera quality is amazing", Date: "2025-03-01", Time: "10:30",
			AccountID: "Happy", Category: models.CategoryGeneral, TypeOfPost: models.TypeCompliment,
			Topic: "Product Info", Product: "Galaxy S25", Sentiment: models.SentimentPositive,
			Source: models.SourceCommentFacebook, Status: models.StatusPending,
		},
	}
	for _, f := range seeds {
		_, err := repo.Insert(context.Background(), f)
		require.NoError(t, err)
	}
	return seeds
}

func TestFeedbackRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := setupFeedbackRepo(t)
	seedFeedbacks(t, repo)

	t.Run("unfiltered newest first", func(t *testing.T) {
		results, err := repo.List(ctx, models.Filter{})

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "2", results[0].ID)
		assert.Equal(t, "1", results[1].ID)
		assert.Equal(t, "3", results[2].ID)
	})

	t.Run("sentiment filter is case-insensitive", func(t *testing.T) {
		results, err := repo.List(ctx, models.Filter{Sentiment: "negative"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "2", results[0].ID)
	})

	t.Run("all is unconstrained", func(t *testing.T) {
		results, err := repo.List(ctx, models.Filter{Sentiment: "all", Status: "all"})

		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("date range inclusive", func(t *testing.T) {
		results, err := repo.List(ctx, models.Filter{DateFrom: "2025-03-01", DateTo: "2025-03-05"})

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("search spans text columns", func(t *testing.T) {
		results, err := repo.List(ctx, models.Filter{Search: "lcd"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "2", results[0].ID)
	})

	t.Run("combined dimensions are ANDed", func(t *testing.T) {
		results, err := repo.List(ctx, models.Filter{
			Category: models.CategoryIm,
			Topic:    "Technical",
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "2", results[0].ID)
	})
}

func TestFeedbackRepositoryCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("insert generates an id when absent", func(t *testing.T) {
		repo := setupFeedbackRepo(t)

		created, err := repo.Insert(ctx, models.Feedback{PostCopy: "halo"})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "halo", got.PostCopy)
	})

	t.Run("get missing row returns ErrNoRows", func(t *testing.T) {
		repo := setupFeedbackRepo(t)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("update round trip", func(t *testing.T) {
		repo := setupFeedbackRepo(t)
		seedFeedbacks(t, repo)

		f, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)

		f.Status = models.StatusPending
		f.Reply = "sedang kami proses ya kak"
		_, err = repo.Update(ctx, f)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.Equal(t, "sedang kami proses ya kak", got.Reply)
	})

	t.Run("update missing row returns ErrNoRows", func(t *testing.T) {
		repo := setupFeedbackRepo(t)

		_, err := repo.Update(ctx, models.Feedback{ID: "missing"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		repo := setupFeedbackRepo(t)
		seedFeedbacks(t, repo)

		require.NoError(t, repo.Delete(ctx, "1"))

		_, err := repo.GetByID(ctx, "1")
		assert.ErrorIs(t, err, sql.ErrNoRows)

		assert.ErrorIs(t, repo.Delete(ctx, "1"), sql.ErrNoRows)
	})

	t.Run("count", func(t *testing.T) {
		repo := setupFeedbackRepo(t)
		seedFeedbacks(t, repo)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
