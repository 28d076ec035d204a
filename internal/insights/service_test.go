package insights_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetracker/lifetracker-api/internal/activity"
	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/insights"
	"github.com/lifetracker/lifetracker-api/internal/journal"
	"github.com/lifetracker/lifetracker-api/internal/search"
	"github.com/lifetracker/lifetracker-api/internal/store"
	"github.com/lifetracker/lifetracker-api/internal/textanalytics"
)

type fixture struct {
	activities activity.Service
	journals   journal.Service
	insights   insights.Service
}

func newFixture() fixture {
	client := store.NewMemoryClient()
	analyzer := textanalytics.NewLocalAnalyzer()

	activities := activity.NewService(activity.NewRepository(client))
	journals := journal.NewService(
		journal.NewRepository(client),
		analyzer,
		search.NewInMemoryService(),
		blob.NewLocalUploader(""),
	)
	return fixture{
		activities: activities,
		journals:   journals,
		insights:   insights.NewService(activities, journals, analyzer),
	}
}

func dateString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func TestFitnessSummary(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("AggregatesTotalsAndAverages", func(t *testing.T) {
		f := newFixture()
		for _, dto := range []activity.CreateActivityDTO{
			{Type: "running", Duration: 30, Calories: 300, Date: "2026-03-10"},
			{Type: "running", Duration: 50, Calories: 500, Date: "2026-03-10"},
			{Type: "swimming", Duration: 40, Calories: 350, Date: "2026-03-12"},
		} {
			_, err := f.activities.Create(ctx, "u1", dto)
			require.NoError(t, err)
		}

		summary, err := f.insights.FitnessSummary(ctx, "u1", from, to)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalActivities)
		assert.Equal(t, 120, summary.TotalDuration)
		assert.Equal(t, 1150, summary.TotalCalories)
		assert.Equal(t, 2, summary.ActiveDays)
		assert.InDelta(t, 60.0, summary.AvgDurationPerDay, 1e-9)

		running := summary.ByType["running"]
		assert.Equal(t, 2, running.Count)
		assert.InDelta(t, 40.0, running.AvgDuration, 1e-9)
		assert.InDelta(t, 400.0, running.AvgCalories, 1e-9)
	})

	t.Run("ExcludesOtherUsersAndOutOfRange", func(t *testing.T) {
		f := newFixture()
		_, err := f.activities.Create(ctx, "u1", activity.CreateActivityDTO{Type: "running", Duration: 30, Calories: 300, Date: "2026-03-10"})
		require.NoError(t, err)
		_, err = f.activities.Create(ctx, "u1", activity.CreateActivityDTO{Type: "running", Duration: 60, Calories: 600, Date: "2026-05-01"})
		require.NoError(t, err)
		_, err = f.activities.Create(ctx, "u2", activity.CreateActivityDTO{Type: "running", Duration: 90, Calories: 900, Date: "2026-03-10"})
		require.NoError(t, err)

		summary, err := f.insights.FitnessSummary(ctx, "u1", from, to)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.TotalActivities)
	})

	t.Run("EmptyRangeYieldsZeroes", func(t *testing.T) {
		f := newFixture()

		summary, err := f.insights.FitnessSummary(ctx, "u1", from, to)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.TotalActivities)
		assert.Equal(t, 0, summary.ActiveDays)
		assert.Zero(t, summary.AvgDurationPerDay)
		assert.NotNil(t, summary.ByType)
		assert.Empty(t, summary.ByType)
	})
}

func TestWeeklyTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("ComparesAdjacentWindows", func(t *testing.T) {
		f := newFixture()
		now := time.Now().UTC()

		_, err := f.activities.Create(ctx, "u1", activity.CreateActivityDTO{
			Type: "running", Duration: 45, Calories: 450, Date: dateString(now.AddDate(0, 0, -2)),
		})
		require.NoError(t, err)
		_, err = f.activities.Create(ctx, "u1", activity.CreateActivityDTO{
			Type: "running", Duration: 30, Calories: 300, Date: dateString(now.AddDate(0, 0, -10)),
		})
		require.NoError(t, err)

		trend, err := f.insights.WeeklyTrend(ctx, "u1")
		require.NoError(t, err)
		assert.InDelta(t, 0.0, trend.Activities.ChangePct, 1e-9)
		assert.InDelta(t, 50.0, trend.Duration.ChangePct, 1e-9)
		assert.InDelta(t, 50.0, trend.Calories.ChangePct, 1e-9)
	})

	t.Run("ZeroBaselineWithNewActivityIsFullIncrease", func(t *testing.T) {
		f := newFixture()
		now := time.Now().UTC()

		_, err := f.activities.Create(ctx, "u1", activity.CreateActivityDTO{
			Type: "running", Duration: 20, Calories: 200, Date: dateString(now.AddDate(0, 0, -1)),
		})
		require.NoError(t, err)

		trend, err := f.insights.WeeklyTrend(ctx, "u1")
		require.NoError(t, err)
		assert.InDelta(t, 100.0, trend.Activities.ChangePct, 1e-9)
	})

	t.Run("NoActivityAtAllIsFlat", func(t *testing.T) {
		f := newFixture()

		trend, err := f.insights.WeeklyTrend(ctx, "u1")
		require.NoError(t, err)
		assert.Zero(t, trend.Activities.ChangePct)
		assert.Zero(t, trend.Duration.ChangePct)
		assert.Zero(t, trend.Calories.ChangePct)
	})
}

func TestJournalInsights(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("AggregatesSentimentTopicsAndMoods", func(t *testing.T) {
		f := newFixture()
		for _, dto := range []journal.CreateJournalDTO{
			{Content: "Felt happy and strong during the marathon training", Date: "2026-03-10", Mood: "happy"},
			{Content: "Tired after the marathon training block", Date: "2026-03-10", Mood: "tired"},
			{Content: "Great marathon pace, proud of the progress", Date: "2026-03-12", Mood: "happy"},
		} {
			_, err := f.journals.Create(ctx, "u1", dto)
			require.NoError(t, err)
		}

		result, err := f.insights.JournalInsights(ctx, "u1", from, to)
		require.NoError(t, err)
		assert.Equal(t, 3, result.EntryCount)
		assert.Greater(t, result.AverageSentiment, 0.0)
		assert.LessOrEqual(t, result.AverageSentiment, 1.0)

		require.Len(t, result.SentimentByDay, 2)
		assert.Equal(t, "2026-03-10", result.SentimentByDay[0].Day)
		assert.Equal(t, 2, result.SentimentByDay[0].Entries)
		assert.Equal(t, "2026-03-12", result.SentimentByDay[1].Day)

		require.NotEmpty(t, result.TopTopics)
		assert.Equal(t, "marathon", result.TopTopics[0].Topic)
		assert.Equal(t, 3, result.TopTopics[0].Count)

		require.Len(t, result.TopMoods, 2)
		assert.Equal(t, "happy", result.TopMoods[0].Mood)
		assert.Equal(t, 2, result.TopMoods[0].Count)
	})

	t.Run("EmptyRangeKeepsShape", func(t *testing.T) {
		f := newFixture()

		result, err := f.insights.JournalInsights(ctx, "u1", from, to)
		require.NoError(t, err)
		assert.Equal(t, 0, result.EntryCount)
		assert.Zero(t, result.AverageSentiment)
		assert.NotNil(t, result.SentimentByDay)
		assert.NotNil(t, result.TopTopics)
		assert.NotNil(t, result.TopMoods)
	})
}
