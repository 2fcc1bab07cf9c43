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
)

func setupTopicRepos(t *testing.T) (*repository.TopicRepository, *repository.FeedbackRepository) {
	t.Helper()

	db := setupTestDB(t)
	feedbacks := repository.NewFeedbackRepository(db)
	topics := repository.NewTopicRepository(db)
	ctx := context.Background()
	require.NoError(t, feedbacks.EnsureSchema(ctx))
	require.NoError(t, topics.EnsureSchema(ctx))
	return topics, feedbacks
}

func TestTopicRepositoryCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list ordered by name", func(t *testing.T) {
		topics, _ := setupTopicRepos(t)

		_, err := topics.Create(ctx, models.Topic{Name: "Pricing", Category: "General"})
		require.NoError(t, err)
		_, err = topics.Create(ctx, models.Topic{Name: "Battery", Category: "Hardware"})
		require.NoError(t, err)

		all, err := topics.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Battery", all[0].Name)
		assert.Equal(t, "Pricing", all[1].Name)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		topics, _ := setupTopicRepos(t)

		_, err := topics.Create(ctx, models.Topic{Name: "Pricing"})
		require.NoError(t, err)
		_, err = topics.Create(ctx, models.Topic{Name: "Pricing"})
		assert.Error(t, err)
	})

	t.Run("get or create is idempotent", func(t *testing.T) {
		topics, _ := setupTopicRepos(t)

		first, err := topics.GetOrCreate(ctx, "Technical", "Support")
		require.NoError(t, err)
		second, err := topics.GetOrCreate(ctx, "Technical", "Support")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("update missing topic returns ErrNoRows", func(t *testing.T) {
		topics, _ := setupTopicRepos(t)

		_, err := topics.Update(ctx, models.Topic{ID: "missing", Name: "x"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("delete cascades assignments", func(t *testing.T) {
		topics, feedbacks := setupTopicRepos(t)

		f, err := feedbacks.Insert(ctx, models.Feedback{PostCopy: "halo"})
		require.NoError(t, err)
		topic, err := topics.Create(ctx, models.Topic{Name: "Promo"})
		require.NoError(t, err)
		require.NoError(t, topics.AssignTopics(ctx, f.ID, []string{topic.ID}))

		require.NoError(t, topics.Delete(ctx, topic.ID))

		assigned, err := topics.TopicsForFeedback(ctx, f.ID)
		require.NoError(t, err)
		assert.Empty(t, assigned)

		// The join rows themselves must be gone, not just unreachable
		// through the topics join.
		orphans, err := topics.FeedbacksForTopic(ctx, topic.ID)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})
}

func TestTopicAssignments(t *testing.T) {
	ctx := context.Background()

	t.Run("assign is duplicate-safe", func(t *testing.T) {
		topics, feedbacks := setupTopicRepos(t)

		f, err := feedbacks.Insert(ctx, models.Feedback{PostCopy: "halo"})
		require.NoError(t, err)
		topic, err := topics.Create(ctx, models.Topic{Name: "Promo"})
		require.NoError(t, err)

		require.NoError(t, topics.AssignTopics(ctx, f.ID, []string{topic.ID}))
		require.NoError(t, topics.AssignTopics(ctx, f.ID, []string{topic.ID}))

		ids, err := topics.FeedbacksForTopic(ctx, topic.ID)
		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})

	t.Run("replace swaps the assignment set", func(t *testing.T) {
		topics, feedbacks := setupTopicRepos(t)

		f, err := feedbacks.Insert(ctx, models.Feedback{PostCopy: "halo"})
		require.NoError(t, err)
		a, err := topics.Create(ctx, models.Topic{Name: "Promo"})
		require.NoError(t, err)
		b, err := topics.Create(ctx, models.Topic{Name: "Pricing"})
		require.NoError(t, err)

		require.NoError(t, topics.AssignTopics(ctx, f.ID, []string{a.ID}))
		require.NoError(t, topics.ReplaceTopics(ctx, f.ID, []string{b.ID}))

		assigned, err := topics.TopicsForFeedback(ctx, f.ID)
		require.NoError(t, err)
		require.Len(t, assigned, 1)
		assert.Equal(t, "Pricing", assigned[0].Name)
	})

	t.Run("remove detaches one topic", func(t *testing.T) {
		topics, feedbacks := setupTopicRepos(t)

		f, err := feedbacks.Insert(ctx, models.Feedback{PostCopy: "halo"})
		require.NoError(t, err)
		a, err := topics.Create(ctx, models.Topic{Name: "Promo"})
		require.NoError(t, err)
		b, err := topics.Create(ctx, models.Topic{Name: "Pricing"})
		require.NoError(t, err)
		require.NoError(t, topics.AssignTopics(ctx, f.ID, []string{a.ID, b.ID}))

		require.NoError(t, topics.RemoveTopic(ctx, f.ID, a.ID))

		assigned, err := topics.TopicsForFeedback(ctx, f.ID)
		require.NoError(t, err)
		require.Len(t, assigned, 1)
		assert.Equal(t, "Pricing", assigned[0].Name)
	})
}

func TestTopicStatistics(t *testing.T) {
	ctx := context.Background()
	topics, feedbacks := setupTopicRepos(t)

	technical, err := topics.Create(ctx, models.Topic{Name: "Technical"})
	require.NoError(t, err)
	promo, err := topics.Create(ctx, models.Topic{Name: "Promo"})
	require.NoError(t, err)

	seeds := []models.Feedback{
		{ID: "1", AccountID: "a", Sentiment: models.SentimentPositive},
		{ID: "2", AccountID: "a", Sentiment: models.SentimentNegative},
		{ID: "3", AccountID: "b", Sentiment: models.SentimentPositive},
	}
	for _, f := range seeds {
		_, err := feedbacks.Insert(ctx, f)
		require.NoError(t, err)
	}
	require.NoError(t, topics.AssignTopics(ctx, "1", []string{technical.ID}))
	require.NoError(t, topics.AssignTopics(ctx, "2", []string{technical.ID}))
	require.NoError(t, topics.AssignTopics(ctx, "3", []string{technical.ID, promo.ID}))

	stats, err := topics.ListWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by feedback count descending.
	assert.Equal(t, "Technical", stats[0].Name)
	assert.Equal(t, 3, stats[0].FeedbackCount)
	assert.Equal(t, 2, stats[0].UniqueCustomers)
	assert.Equal(t, 2, stats[0].PositiveCount)
	assert.Equal(t, 1, stats[0].NegativeCount)
	assert.InDelta(t, 66.7, stats[0].PositivePercentage, 0.01)

	assert.Equal(t, "Promo", stats[1].Name)
	assert.Equal(t, 1, stats[1].FeedbackCount)
	assert.InDelta(t, 100.0, stats[1].PositivePercentage, 0.01)
}
